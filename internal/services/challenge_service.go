package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"ahorro/internal/core"
)

// ChallengeStore is the storage surface the challenge engine needs.
type ChallengeStore interface {
	CreateChallenge(ctx context.Context, description string) (core.Challenge, error)
	GetChallenge(ctx context.Context, id int64) (*core.Challenge, error)
	AvailableChallenges(ctx context.Context) ([]core.Challenge, error)
	ActiveChallenge(ctx context.Context, cutoff time.Time) (*core.Challenge, error)
	ActivateChallengeIfNone(ctx context.Context, id int64, at, cutoff time.Time) (bool, error)
	ChallengeHistory(ctx context.Context) ([]core.Challenge, error)
	MarkChallengeCompleted(ctx context.Context, id, userID int64) error
	MarkPenaltyApplied(ctx context.Context, id int64) (bool, error)
	ListPenalties(ctx context.Context) ([]core.Penalty, error)
	CreatePenalty(ctx context.Context, text string) (core.Penalty, error)
}

// ChallengeService runs the 24h challenge game: random activation from the
// pool, per-user completion, and penalty draws for failed challenges.
type ChallengeService struct {
	store ChallengeStore
	now   func() time.Time
	pick  func(n int) int
}

func NewChallengeService(store ChallengeStore) *ChallengeService {
	return &ChallengeService{
		store: store,
		now:   time.Now,
		pick:  rand.IntN,
	}
}

func (s *ChallengeService) cutoff() time.Time {
	return s.now().Add(-core.ChallengeWindow)
}

// Create adds a challenge to the pool.
func (s *ChallengeService) Create(ctx context.Context, description string) (core.Challenge, error) {
	if description == "" {
		return core.Challenge{}, core.ErrEmptyDescription
	}
	return s.store.CreateChallenge(ctx, description)
}

// Available returns pooled challenges that were never activated.
func (s *ChallengeService) Available(ctx context.Context) ([]core.Challenge, error) {
	return s.store.AvailableChallenges(ctx)
}

// Current returns the active challenge, or nil when none is running.
func (s *ChallengeService) Current(ctx context.Context) (*core.Challenge, error) {
	return s.store.ActiveChallenge(ctx, s.cutoff())
}

// History returns finished challenges, newest first. The currently active
// instance is not history yet, so it is filtered out on its derived state.
func (s *ChallengeService) History(ctx context.Context) ([]core.Challenge, error) {
	activated, err := s.store.ChallengeHistory(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	history := make([]core.Challenge, 0, len(activated))
	for _, c := range activated {
		switch c.State(now) {
		case core.StateCompleted, core.StateExpired:
			history = append(history, c)
		}
	}
	return history, nil
}

// ActivateRandom draws a random challenge from the pool and starts its 24h
// window. At most one challenge can be active: when one already is, it is
// returned along with ErrChallengeActive.
func (s *ChallengeService) ActivateRandom(ctx context.Context) (core.Challenge, error) {
	active, err := s.store.ActiveChallenge(ctx, s.cutoff())
	if err != nil {
		return core.Challenge{}, fmt.Errorf("check active challenge: %w", err)
	}
	if active != nil {
		return *active, ErrChallengeActive
	}

	available, err := s.store.AvailableChallenges(ctx)
	if err != nil {
		return core.Challenge{}, fmt.Errorf("list available challenges: %w", err)
	}
	if len(available) == 0 {
		return core.Challenge{}, ErrNoChallenges
	}

	chosen := available[s.pick(len(available))]
	now := s.now()
	ok, err := s.store.ActivateChallengeIfNone(ctx, chosen.ID, now, now.Add(-core.ChallengeWindow))
	if err != nil {
		return core.Challenge{}, fmt.Errorf("activate challenge: %w", err)
	}
	if !ok {
		// Lost the race: someone else activated between our check and the
		// write. Report whatever is active now.
		active, err := s.store.ActiveChallenge(ctx, s.cutoff())
		if err != nil {
			return core.Challenge{}, fmt.Errorf("recheck active challenge: %w", err)
		}
		if active != nil {
			return *active, ErrChallengeActive
		}
		return core.Challenge{}, ErrChallengeActive
	}

	chosen.ActivatedAt = &now
	deadline, _ := chosen.Deadline()
	slog.InfoContext(ctx, "Challenge activated",
		"challenge_id", chosen.ID,
		"deadline", deadline)
	return chosen, nil
}

// Complete records that one user finished the active challenge. It returns
// the updated challenge and whether both users have now completed it.
// Completing the same challenge twice for the same user is a no-op.
func (s *ChallengeService) Complete(ctx context.Context, id, userID int64) (core.Challenge, bool, error) {
	if !core.ValidUserID(userID) {
		return core.Challenge{}, false, core.ErrInvalidUser
	}

	challenge, err := s.store.GetChallenge(ctx, id)
	if err != nil {
		return core.Challenge{}, false, fmt.Errorf("get challenge: %w", err)
	}
	if challenge == nil {
		return core.Challenge{}, false, ErrNotFound
	}
	if challenge.ActivatedAt == nil {
		return *challenge, false, ErrChallengeNotActive
	}
	if challenge.State(s.now()) == core.StateExpired {
		return *challenge, false, ErrChallengeExpired
	}

	if err := s.store.MarkChallengeCompleted(ctx, id, userID); err != nil {
		return core.Challenge{}, false, fmt.Errorf("mark challenge completed: %w", err)
	}

	updated, err := s.store.GetChallenge(ctx, id)
	if err != nil {
		return core.Challenge{}, false, fmt.Errorf("reload challenge: %w", err)
	}
	if updated == nil {
		return core.Challenge{}, false, ErrNotFound
	}

	both := updated.BothCompleted()
	slog.InfoContext(ctx, "Challenge completion recorded",
		"challenge_id", id,
		"user_id", userID,
		"both_completed", both)
	return *updated, both, nil
}

// ApplyPenalty records that the penalty for a failed challenge was served.
// The flag is one-way and the operation is idempotent: applying it again is
// a no-op. Which penalty to serve is the client's draw (RandomPenalty).
func (s *ChallengeService) ApplyPenalty(ctx context.Context, id int64) error {
	challenge, err := s.store.GetChallenge(ctx, id)
	if err != nil {
		return fmt.Errorf("get challenge: %w", err)
	}
	if challenge == nil {
		return ErrNotFound
	}

	applied, err := s.store.MarkPenaltyApplied(ctx, id)
	if err != nil {
		return fmt.Errorf("mark penalty applied: %w", err)
	}
	if applied {
		slog.InfoContext(ctx, "Penalty applied", "challenge_id", id)
	}
	return nil
}

// Penalties lists the penalty pool.
func (s *ChallengeService) Penalties(ctx context.Context) ([]core.Penalty, error) {
	return s.store.ListPenalties(ctx)
}

// AddPenalty adds a penalty to the pool.
func (s *ChallengeService) AddPenalty(ctx context.Context, text string) (core.Penalty, error) {
	if text == "" {
		return core.Penalty{}, core.ErrEmptyDescription
	}
	return s.store.CreatePenalty(ctx, text)
}

// RandomPenalty draws one penalty from the pool.
func (s *ChallengeService) RandomPenalty(ctx context.Context) (core.Penalty, error) {
	penalties, err := s.store.ListPenalties(ctx)
	if err != nil {
		return core.Penalty{}, fmt.Errorf("list penalties: %w", err)
	}
	if len(penalties) == 0 {
		return core.Penalty{}, ErrNoPenalties
	}
	return penalties[s.pick(len(penalties))], nil
}
