package entity

import (
	"strings"
	"time"

	"abstract-main/pkg/reactive"

	"github.com/google/uuid"
)

// Message is one line of the chat screen. Messages are append-only.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage stamps a message from sender. Blank text is rejected with
// reactive.ErrEmptyText.
func NewMessage(sender, text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, reactive.ErrEmptyText
	}
	return &Message{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}, nil
}

func (m *Message) EntityID() string          { return m.ID }
func (m *Message) EntityKind() reactive.Kind { return reactive.KindMessage }
