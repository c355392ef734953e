package usecase

import (
	"context"
	"errors"
	"fmt"

	"abstract-main/pkg/entity"
	"abstract-main/pkg/jwt"
	"abstract-main/pkg/logger"
	"abstract-main/pkg/reactive"
	"abstract-main/pkg/thread"
)

type SessionInfo struct {
	SessionID string `json:"session_id"`
	Handle    string `json:"handle"`
	Token     string `json:"token"`
}

type SessionUseCase interface {
	StartSession(handle string) (*SessionInfo, error)
	EndSession(sessionID string) error
	List(ctx context.Context, sessionID string, kind reactive.Kind) ([]EntityView, error)
	Get(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*EntityView, error)
	ToggleLike(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*LikeResult, error)
	ToggleSave(ctx context.Context, sessionID string, kind reactive.Kind, id string) (bool, error)
	ListSaved(ctx context.Context, sessionID string, kind reactive.Kind) ([]EntityView, error)
	Comments(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*ThreadView, error)
	AddComment(ctx context.Context, sessionID string, kind reactive.Kind, id, text string) (*CommentView, error)
	AddReply(ctx context.Context, sessionID string, kind reactive.Kind, id, parentID, text string) (*CommentView, error)
	ToggleCommentLike(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) (*LikeResult, error)
	ToggleReplyLike(ctx context.Context, sessionID string, kind reactive.Kind, id, parentID string, index int) (*LikeResult, error)
	DeleteComment(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) error
	SetExpanded(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string, expanded bool) error
	SetReplyTarget(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) error
	SetReplyDraft(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID, text string) error
	Messages(ctx context.Context, sessionID string) ([]MessageView, error)
	SendMessage(ctx context.Context, sessionID, text string) (*MessageView, error)
	Subscribe(ctx context.Context, sessionID string, fn func(Event)) (*Subscription, error)
}

// Subscription is a live registration on a session's changes. Done is
// closed when the session ends.
type Subscription struct {
	Done   <-chan struct{}
	Cancel func()
}

type sessionUseCase struct {
	manager    *Manager
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewSessionUseCase(manager *Manager, jwtService *jwt.Service, logger *logger.Logger) SessionUseCase {
	return &sessionUseCase{
		manager:    manager,
		jwtService: jwtService,
		logger:     logger,
	}
}

// do runs fn on the goroutine of the given session.
func (uc *sessionUseCase) do(ctx context.Context, sessionID string, fn func(s *Session) error) error {
	s, err := uc.manager.Get(sessionID)
	if err != nil {
		return err
	}
	return s.Do(ctx, func() error { return fn(s) })
}

func (uc *sessionUseCase) StartSession(handle string) (*SessionInfo, error) {
	s, err := uc.manager.Create(handle)
	if err != nil {
		return nil, err
	}

	token, err := uc.jwtService.GenerateToken(s.ID, s.Handle)
	if err != nil {
		_ = uc.manager.End(s.ID)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &SessionInfo{SessionID: s.ID, Handle: s.Handle, Token: token}, nil
}

func (uc *sessionUseCase) EndSession(sessionID string) error {
	return uc.manager.End(sessionID)
}

func (uc *sessionUseCase) List(ctx context.Context, sessionID string, kind reactive.Kind) ([]EntityView, error) {
	var views []EntityView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		c, err := s.collection(kind)
		if err != nil {
			return err
		}
		items := c.all()
		views = make([]EntityView, 0, len(items))
		for _, e := range items {
			views = append(views, s.entityView(e))
		}
		return nil
	})
	return views, err
}

func (uc *sessionUseCase) Get(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*EntityView, error) {
	var view EntityView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		e, err := s.entity(kind, id)
		if err != nil {
			return err
		}
		view = s.entityView(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (uc *sessionUseCase) ToggleLike(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*LikeResult, error) {
	var result LikeResult
	err := uc.do(ctx, sessionID, func(s *Session) error {
		c, err := s.collection(kind)
		if err != nil {
			return err
		}
		liked, err := c.ToggleLike(id)
		if err != nil {
			return err
		}
		e, err := c.get(id)
		if err != nil {
			return err
		}
		result = LikeResult{ID: id, Liked: liked, Likes: e.(reactive.Likeable).LikeState().Count}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *sessionUseCase) ToggleSave(ctx context.Context, sessionID string, kind reactive.Kind, id string) (bool, error) {
	var saved bool
	err := uc.do(ctx, sessionID, func(s *Session) error {
		e, err := s.entity(kind, id)
		if err != nil {
			return err
		}
		saved, err = s.saved.Toggle(e)
		return err
	})
	return saved, err
}

func (uc *sessionUseCase) ListSaved(ctx context.Context, sessionID string, kind reactive.Kind) ([]EntityView, error) {
	var views []EntityView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		p, err := s.saved.Projection(kind)
		if err != nil {
			return err
		}
		items := p.Items()
		views = make([]EntityView, 0, len(items))
		for _, e := range items {
			views = append(views, s.entityView(e))
		}
		return nil
	})
	return views, err
}

func (uc *sessionUseCase) Comments(ctx context.Context, sessionID string, kind reactive.Kind, id string) (*ThreadView, error) {
	var view ThreadView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		view = threadView(id, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (uc *sessionUseCase) AddComment(ctx context.Context, sessionID string, kind reactive.Kind, id, text string) (*CommentView, error) {
	var view CommentView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		c, err := s.collection(kind)
		if err != nil {
			return err
		}
		comment := thread.NewComment(s.Handle, text)
		if err := c.AppendComment(id, comment); err != nil {
			return err
		}
		t, err := c.Thread(id)
		if err != nil {
			return err
		}
		view = commentView(comment, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (uc *sessionUseCase) AddReply(ctx context.Context, sessionID string, kind reactive.Kind, id, parentID, text string) (*CommentView, error) {
	var view CommentView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		reply, err := t.AddReply(parentID, s.Handle, text)
		if err != nil {
			return err
		}
		view = commentView(reply, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (uc *sessionUseCase) ToggleCommentLike(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) (*LikeResult, error) {
	var result LikeResult
	err := uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		liked, err := t.ToggleLike(commentID)
		if err != nil {
			return err
		}
		c, _ := t.Find(commentID)
		result = LikeResult{ID: commentID, Liked: liked, Likes: c.Like.Count}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *sessionUseCase) ToggleReplyLike(ctx context.Context, sessionID string, kind reactive.Kind, id, parentID string, index int) (*LikeResult, error) {
	var result LikeResult
	err := uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		liked, err := t.ToggleReplyLike(parentID, index)
		if err != nil {
			return err
		}
		parent, _ := t.Find(parentID)
		r := parent.Replies[index]
		result = LikeResult{ID: r.ID, Liked: liked, Likes: r.Like.Count}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *sessionUseCase) DeleteComment(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) error {
	return uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		return t.Delete(commentID)
	})
}

func (uc *sessionUseCase) SetExpanded(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string, expanded bool) error {
	return uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		t.SetExpanded(commentID, expanded)
		return nil
	})
}

func (uc *sessionUseCase) SetReplyTarget(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID string) error {
	return uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		t.SetActiveReplyTarget(commentID)
		return nil
	})
}

func (uc *sessionUseCase) SetReplyDraft(ctx context.Context, sessionID string, kind reactive.Kind, id, commentID, text string) error {
	return uc.do(ctx, sessionID, func(s *Session) error {
		t, err := s.thread(kind, id)
		if err != nil {
			return err
		}
		t.SetReplyDraft(commentID, text)
		return nil
	})
}

func (uc *sessionUseCase) Messages(ctx context.Context, sessionID string) ([]MessageView, error) {
	var views []MessageView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		items := s.messages.List()
		views = make([]MessageView, 0, len(items))
		for _, m := range items {
			views = append(views, messageView(m))
		}
		return nil
	})
	return views, err
}

// SendMessage appends a chat message from the session's handle.
func (uc *sessionUseCase) SendMessage(ctx context.Context, sessionID, text string) (*MessageView, error) {
	var view MessageView
	err := uc.do(ctx, sessionID, func(s *Session) error {
		m, err := entity.NewMessage(s.Handle, text)
		if err != nil {
			return err
		}
		if err := s.messages.Append(m); err != nil {
			return err
		}
		view = messageView(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Subscribe registers fn for every change committed in the session. fn runs
// on the session goroutine and must not block or call back into the use
// case for the same session.
func (uc *sessionUseCase) Subscribe(ctx context.Context, sessionID string, fn func(Event)) (*Subscription, error) {
	s, err := uc.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var unsub func()
	if err := s.Do(ctx, func() error {
		unsub = s.subscribe(fn)
		return nil
	}); err != nil {
		return nil, err
	}

	cancel := func() {
		if err := s.Do(context.Background(), func() error {
			unsub()
			return nil
		}); err != nil && !errors.Is(err, ErrSessionClosed) {
			uc.logger.Warn("[EVENTS] Failed to unsubscribe from session %s: %v", sessionID, err)
		}
	}
	return &Subscription{Done: s.Done(), Cancel: cancel}, nil
}
