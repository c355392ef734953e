package entity

import (
	"abstract-main/pkg/reactive"

	"github.com/google/uuid"
)

// Product is a marketplace listing. It carries no like state or comments.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

func NewProduct(name, description string, price float64, imageURL string) *Product {
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}

func (p *Product) EntityID() string          { return p.ID }
func (p *Product) EntityKind() reactive.Kind { return reactive.KindProduct }
