package memory

import (
	"context"
	"fmt"
	"sync"

	"ahorro/internal/core"
)

// Store is an in-memory SavingWriter used in tests and local runs without
// Google credentials.
type Store struct {
	mu    sync.Mutex
	items []core.Saving
}

func New() *Store {
	return &Store{}
}

// Append stores the saving and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, saving core.Saving) (string, error) {
	if err := saving.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, saving)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Savings returns a copy of everything appended so far.
func (s *Store) Savings() []core.Saving {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Saving, len(s.items))
	copy(out, s.items)
	return out
}
