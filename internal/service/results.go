package service

import "golang.org/x/text/message"

// Tier is the encouragement band for a final percentage.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
	TierPerfect
)

func TierFor(percentage int) Tier {
	switch {
	case percentage == 100:
		return TierPerfect
	case percentage >= 80:
		return TierHigh
	case percentage >= 60:
		return TierMid
	default:
		return TierLow
	}
}

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierHigh:
		return "high"
	case TierMid:
		return "mid"
	default:
		return "low"
	}
}

// Message returns the localized encouragement line for the tier.
func (t Tier) Message(p *message.Printer) string {
	switch t {
	case TierPerfect:
		return p.Sprintf("Perfect score! Excellent work! 🎉")
	case TierHigh:
		return p.Sprintf("Great job! 👍")
	case TierMid:
		return p.Sprintf("Good effort! Keep learning! 📚")
	default:
		return p.Sprintf("Keep practicing! You'll get better! 💪")
	}
}
