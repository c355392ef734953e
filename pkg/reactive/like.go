package reactive

// Like pairs a counter with the current user's liked flag. Count and Liked
// only move together through Toggle.
type Like struct {
	Count int  `json:"likes"`
	Liked bool `json:"is_liked"`
}

// Toggle flips Liked and moves Count by one in the same direction.
func (l *Like) Toggle() bool {
	l.Liked = !l.Liked
	if l.Liked {
		l.Count++
	} else if l.Count > 0 {
		l.Count--
	}
	return l.Liked
}

// Normalize repairs a state Toggle could not have produced: a liked entry
// counts the current user, so its counter is at least one.
func (l *Like) Normalize() {
	if l.Count < 0 {
		l.Count = 0
	}
	if l.Liked && l.Count == 0 {
		l.Count = 1
	}
}
