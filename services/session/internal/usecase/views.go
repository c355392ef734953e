package usecase

import (
	"time"

	"abstract-main/pkg/entity"
	"abstract-main/pkg/reactive"
	"abstract-main/pkg/thread"
)

// Views are copies taken on the session goroutine so they can be encoded
// after Do returns.

type EntityView struct {
	Kind         reactive.Kind `json:"kind"`
	ID           string        `json:"id"`
	Author       string        `json:"author,omitempty"`
	Caption      string        `json:"caption,omitempty"`
	Images       []string      `json:"images,omitempty"`
	URL          string        `json:"url,omitempty"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	Views        int           `json:"views,omitempty"`
	Likes        int           `json:"likes"`
	IsLiked      bool          `json:"is_liked"`
	CommentCount int           `json:"comment_count"`
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price,omitempty"`
	ImageURL     string        `json:"image_url,omitempty"`
	IsSaved      bool          `json:"is_saved"`
	Age          string        `json:"age,omitempty"`
	CreatedAt    *time.Time    `json:"created_at,omitempty"`
}

type CommentView struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Text      string        `json:"text"`
	Likes     int           `json:"likes"`
	IsLiked   bool          `json:"is_liked"`
	Replies   []CommentView `json:"replies,omitempty"`
	Draft     string        `json:"draft,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type ThreadView struct {
	EntityID    string        `json:"entity_id"`
	Comments    []CommentView `json:"comments"`
	Count       int           `json:"count"`
	Expanded    []string      `json:"expanded"`
	ReplyTarget string        `json:"reply_target,omitempty"`
}

type MessageView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type LikeResult struct {
	ID    string `json:"id"`
	Liked bool   `json:"liked"`
	Likes int    `json:"likes"`
}

func (s *Session) entityView(e reactive.Entity) EntityView {
	v := EntityView{
		Kind:    e.EntityKind(),
		ID:      e.EntityID(),
		IsSaved: s.saved.IsSaved(e.EntityKind(), e.EntityID()),
	}
	if l, ok := e.(reactive.Likeable); ok {
		v.Likes = l.LikeState().Count
		v.IsLiked = l.LikeState().Liked
	}

	switch e := e.(type) {
	case *entity.Post:
		created := e.CreatedAt
		v.Author = e.Author
		v.Caption = e.Caption
		v.Images = append([]string(nil), e.Images...)
		v.CommentCount = e.Comments.Count()
		v.Age = entity.PostAge(created, time.Now())
		v.CreatedAt = &created
	case *entity.Clip:
		created := e.CreatedAt
		v.Author = e.Author
		v.Caption = e.Caption
		v.URL = e.URL
		v.ThumbnailURL = e.ThumbnailURL
		v.Views = e.Views
		v.CommentCount = e.CommentCount()
		v.CreatedAt = &created
	case *entity.Product:
		v.Name = e.Name
		v.Description = e.Description
		v.Price = e.Price
		v.ImageURL = e.ImageURL
	}
	return v
}

func messageView(m *entity.Message) MessageView {
	return MessageView{ID: m.ID, Text: m.Text, Sender: m.Sender, Timestamp: m.Timestamp}
}

func commentView(c *thread.Comment, t *thread.Thread) CommentView {
	v := CommentView{
		ID:        c.ID,
		Username:  c.Author,
		Text:      c.Text,
		Likes:     c.Like.Count,
		IsLiked:   c.Like.Liked,
		CreatedAt: c.CreatedAt,
	}
	if t != nil {
		v.Draft = t.ReplyDraft(c.ID)
	}
	for _, r := range c.Replies {
		v.Replies = append(v.Replies, commentView(r, nil))
	}
	return v
}

func threadView(entityID string, t *thread.Thread) ThreadView {
	comments := t.Comments()
	v := ThreadView{
		EntityID:    entityID,
		Comments:    make([]CommentView, 0, len(comments)),
		Count:       t.Count(),
		Expanded:    t.Expanded(),
		ReplyTarget: t.ActiveReplyTarget(),
	}
	for _, c := range comments {
		v.Comments = append(v.Comments, commentView(c, t))
	}
	return v
}
