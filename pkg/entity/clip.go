package entity

import (
	"time"

	"abstract-main/pkg/reactive"
	"abstract-main/pkg/thread"

	"github.com/google/uuid"
)

type Clip struct {
	ID           string         `json:"id"`
	Author       string         `json:"author"`
	URL          string         `json:"url"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Caption      string         `json:"caption"`
	Views        int            `json:"views"`
	CreatedAt    time.Time      `json:"created_at"`
	Like         reactive.Like  `json:"like"`
	Comments     *thread.Thread `json:"-"`

	// baseComments counts comments that exist upstream but are not loaded
	// into the thread (seeded engagement).
	baseComments int
}

func NewClip(author, url, thumbnailURL, caption string) *Clip {
	return &Clip{
		ID:           uuid.New().String(),
		Author:       author,
		URL:          url,
		ThumbnailURL: thumbnailURL,
		Caption:      caption,
		CreatedAt:    time.Now(),
		Comments:     thread.New(reactive.KindClip),
	}
}

func (c *Clip) EntityID() string              { return c.ID }
func (c *Clip) EntityKind() reactive.Kind     { return reactive.KindClip }
func (c *Clip) LikeState() *reactive.Like     { return &c.Like }
func (c *Clip) CommentThread() *thread.Thread { return c.Comments }

// CommentCount is the engagement counter shown on the reel overlay.
func (c *Clip) CommentCount() int {
	n := c.baseComments
	if c.Comments != nil {
		n += c.Comments.Count()
	}
	return n
}
