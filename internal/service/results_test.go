package service

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       Tier
	}{
		{100, TierPerfect},
		{99, TierHigh},
		{80, TierHigh},
		{79, TierMid},
		{60, TierMid},
		{59, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		if got := TierFor(tt.percentage); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.percentage, got, tt.want)
		}
	}
}

func TestTierMessage(t *testing.T) {
	p := message.NewPrinter(language.English)

	want := map[Tier]string{
		TierPerfect: "Perfect score! Excellent work! 🎉",
		TierHigh:    "Great job! 👍",
		TierMid:     "Good effort! Keep learning! 📚",
		TierLow:     "Keep practicing! You'll get better! 💪",
	}
	for tier, text := range want {
		if got := tier.Message(p); got != text {
			t.Errorf("%s: expected %q, got %q", tier, text, got)
		}
	}
}
