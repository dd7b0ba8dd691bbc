package antispam

import (
	"testing"
	"time"
)

func TestGate_Check(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		attempt Attempt
		want    Verdict
	}{
		{
			name:    "filled honeypot rejected regardless of timing",
			attempt: Attempt{Honeypot: "x", CreatedAt: now.Add(-time.Hour)},
			want:    Verdict{Reason: ReasonAutomated},
		},
		{
			name:    "filled honeypot wins over too fast",
			attempt: Attempt{Honeypot: "x", CreatedAt: now.Add(-500 * time.Millisecond)},
			want:    Verdict{Reason: ReasonAutomated},
		},
		{
			name:    "submitted after 500ms",
			attempt: Attempt{CreatedAt: now.Add(-500 * time.Millisecond)},
			want:    Verdict{Reason: ReasonTooFast},
		},
		{
			name:    "submitted after 3000ms",
			attempt: Attempt{CreatedAt: now.Add(-3000 * time.Millisecond)},
			want:    Verdict{Accepted: true},
		},
		{
			name:    "exactly at threshold accepted",
			attempt: Attempt{CreatedAt: now.Add(-2 * time.Second)},
			want:    Verdict{Accepted: true},
		},
		{
			name:    "clock skew into the future is too fast",
			attempt: Attempt{CreatedAt: now.Add(time.Second)},
			want:    Verdict{Reason: ReasonTooFast},
		},
	}

	gate := NewGate(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := gate.Check(tt.attempt, now); got != tt.want {
				t.Errorf("Check() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewGate(t *testing.T) {
	t.Parallel()

	if got := NewGate(0).MinInterval; got != DefaultMinInterval {
		t.Errorf("NewGate(0).MinInterval = %v, want %v", got, DefaultMinInterval)
	}
	if got := NewGate(5 * time.Second).MinInterval; got != 5*time.Second {
		t.Errorf("NewGate(5s).MinInterval = %v, want 5s", got)
	}
}

func TestReason_Message(t *testing.T) {
	t.Parallel()

	if ReasonAutomated.Message() == "" || ReasonTooFast.Message() == "" {
		t.Error("rejection reasons must carry a user-facing message")
	}
	if ReasonNone.Message() != "" {
		t.Errorf("ReasonNone.Message() = %q, want empty", ReasonNone.Message())
	}
}
