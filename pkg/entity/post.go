package entity

import (
	"time"

	"abstract-main/pkg/reactive"
	"abstract-main/pkg/thread"

	"github.com/google/uuid"
)

type Post struct {
	ID        string         `json:"id"`
	Author    string         `json:"author"`
	Caption   string         `json:"caption"`
	Images    []string       `json:"images"`
	CreatedAt time.Time      `json:"created_at"`
	Like      reactive.Like  `json:"like"`
	Comments  *thread.Thread `json:"-"`
}

func NewPost(author, caption string, images []string) *Post {
	return &Post{
		ID:        uuid.New().String(),
		Author:    author,
		Caption:   caption,
		Images:    images,
		CreatedAt: time.Now(),
		Comments:  thread.New(reactive.KindPost),
	}
}

func (p *Post) EntityID() string              { return p.ID }
func (p *Post) EntityKind() reactive.Kind     { return reactive.KindPost }
func (p *Post) LikeState() *reactive.Like     { return &p.Like }
func (p *Post) CommentThread() *thread.Thread { return p.Comments }
