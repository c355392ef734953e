package reactive

type Kind string

const (
	KindPost    Kind = "post"
	KindClip    Kind = "clip"
	KindProduct Kind = "product"
	KindMessage Kind = "message"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPost, KindClip, KindProduct, KindMessage:
		return true
	}
	return false
}

// ParseKind accepts both the singular kind and the plural collection name
// ("posts", "clips", "products", "messages").
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	if k.Valid() {
		return k, true
	}
	if n := len(s); n > 1 && s[n-1] == 's' {
		k = Kind(s[:n-1])
		if k.Valid() {
			return k, true
		}
	}
	return "", false
}

// Entity is anything with a stable identity. EntityID must never change
// after construction; it is the only key used for membership checks.
type Entity interface {
	EntityID() string
	EntityKind() Kind
}

type Likeable interface {
	Entity
	LikeState() *Like
}
