// Package antispam implements the contact form's submission gate: a honeypot
// check followed by a minimum fill-time check.
package antispam

import (
	"errors"
	"time"
)

// DefaultMinInterval is the shortest time a human is assumed to need to fill
// in the contact form.
const DefaultMinInterval = 2 * time.Second

// Reason explains a rejected attempt.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonAutomated Reason = "automated-submission-suspected"
	ReasonTooFast   Reason = "submitted-too-fast"
)

// Message is the text shown to the user for a rejection.
func (r Reason) Message() string {
	switch r {
	case ReasonAutomated:
		return "Spam detected. Please try again."
	case ReasonTooFast:
		return "Please wait a moment and try again."
	default:
		return ""
	}
}

// Field names of the inputs the gate adds to the contact form.
const (
	HoneypotName  = "website"
	HoneypotClass = "honeypot"
	TokenName     = "timestamp"
)

// ErrTokenInvalid is returned by token verifiers for a missing, forged,
// expired, or already used attempt token.
var ErrTokenInvalid = errors.New("invalid attempt token")

// Attempt is a single submission of the contact form.
type Attempt struct {
	Honeypot  string
	CreatedAt time.Time
}

// Verdict is the gate's decision.
type Verdict struct {
	Accepted bool
	Reason   Reason
}

// Accept and Reject build verdicts.
func Accept() Verdict { return Verdict{Accepted: true} }

func Reject(r Reason) Verdict { return Verdict{Reason: r} }

// Gate applies the two rejection rules in order.
type Gate struct {
	MinInterval time.Duration
}

// NewGate returns a gate; a non-positive interval falls back to the default.
func NewGate(minInterval time.Duration) Gate {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return Gate{MinInterval: minInterval}
}

// Check decides an attempt. A filled honeypot wins over timing.
func (g Gate) Check(a Attempt, now time.Time) Verdict {
	if a.Honeypot != "" {
		return Reject(ReasonAutomated)
	}
	if now.Sub(a.CreatedAt) < g.MinInterval {
		return Reject(ReasonTooFast)
	}
	return Accept()
}
