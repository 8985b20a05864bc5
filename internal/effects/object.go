package effects

import "time"

// Kind identifies the variant of an effect object.
type Kind int

const (
	Firework Kind = iota
	HeartEmoji
	CryingEmoji

	kindCount
)

func (k Kind) valid() bool {
	return k >= Firework && k < kindCount
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Firework:
		return "firework"
	case HeartEmoji:
		return "heart"
	case CryingEmoji:
		return "crying"
	default:
		return "unknown"
	}
}

// Object is a short-lived visual marker. Registry snapshots hand out copies.
type Object struct {
	ID        string
	Kind      Kind
	X, Y      float64
	CreatedAt time.Time
}

// Age returns how long the object has been alive at now.
func (o Object) Age(now time.Time) time.Duration {
	return now.Sub(o.CreatedAt)
}
