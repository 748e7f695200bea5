package core

import "time"

// ChallengeWindow is the validity window after activation during which a
// challenge can still be completed.
const ChallengeWindow = 24 * time.Hour

// ChallengeState is the derived lifecycle state of a challenge instance.
// Expiry is never stored: it is recomputed from the clock on every read, so
// stored and derived state cannot drift.
type ChallengeState string

const (
	StatePooled    ChallengeState = "pooled"
	StateActive    ChallengeState = "active"
	StateCompleted ChallengeState = "completed"
	StateExpired   ChallengeState = "expired"
)

// Challenge is one activation of a challenge description, shared between the
// two users. ActivatedAt == nil means it still sits in the unused pool.
type Challenge struct {
	ID               int64
	Description      string
	ActivatedAt      *time.Time
	CompletedByUser1 bool
	CompletedByUser2 bool
	PenaltyApplied   bool
}

// BothCompleted reports whether both users marked the challenge done.
func (c Challenge) BothCompleted() bool {
	return c.CompletedByUser1 && c.CompletedByUser2
}

// CompletedBy reports whether the given user already completed the challenge.
func (c Challenge) CompletedBy(userID int64) bool {
	switch userID {
	case UserOne:
		return c.CompletedByUser1
	case UserTwo:
		return c.CompletedByUser2
	}
	return false
}

// Deadline returns the end of the validity window. ok is false for pooled
// instances, which have no deadline yet.
func (c Challenge) Deadline() (deadline time.Time, ok bool) {
	if c.ActivatedAt == nil {
		return time.Time{}, false
	}
	return c.ActivatedAt.Add(ChallengeWindow), true
}

// State derives the lifecycle state at the given instant.
//
// Completed wins over Expired: a challenge both users finished inside the
// window stays Completed no matter how much time passes. Completed and
// Expired are terminal.
func (c Challenge) State(now time.Time) ChallengeState {
	if c.ActivatedAt == nil {
		return StatePooled
	}
	if c.BothCompleted() {
		return StateCompleted
	}
	if now.Sub(*c.ActivatedAt) >= ChallengeWindow {
		return StateExpired
	}
	return StateActive
}
