package reactive

import "time"

type Op string

const (
	OpAppend      Op = "append"
	OpMutate      Op = "mutate"
	OpLike        Op = "like"
	OpComment     Op = "comment"
	OpSave        Op = "save"
	OpUnsave      Op = "unsave"
	OpDelete      Op = "delete"
	OpExpand      Op = "expand"
	OpCollapse    Op = "collapse"
	OpReplyTarget Op = "reply_target"
	OpDraft       Op = "draft"
)

// Change describes one committed mutation.
type Change struct {
	Kind Kind      `json:"kind,omitempty"`
	Op   Op        `json:"op"`
	ID   string    `json:"id,omitempty"`
	At   time.Time `json:"at"`
}

func NewChange(kind Kind, op Op, id string) Change {
	return Change{Kind: kind, Op: op, ID: id, At: time.Now()}
}
