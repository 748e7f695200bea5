package core

import (
	"errors"
	"strings"
	"time"
)

// The tracker is shared by exactly two people.
const (
	UserOne int64 = 1
	UserTwo int64 = 2
)

type (
	Money struct {
		Cents int64
	}

	User struct {
		ID    int64
		Name  string
		Color string // "person1" or "person2"
	}

	// Amount is a proposed contribution amount one of the users can pick
	// from the board. Picking it marks it selected; the actual deposit is
	// recorded separately as a Saving.
	Amount struct {
		ID        int64
		UserID    int64
		Value     Money
		Selected  bool
		CreatedAt time.Time
	}

	// Saving is one immutable recorded deposit toward the shared goal.
	// Savings are never updated or deleted once written.
	Saving struct {
		ID       int64
		UserID   int64
		AmountID int64
		Amount   Money
		Date     time.Time
	}

	// Milestone is a fixed target amount on the savings ladder with a
	// one-way completion flag.
	Milestone struct {
		ID          int64
		Target      Money
		Completed   bool
		CompletedAt *time.Time
	}

	Penalty struct {
		ID   int64
		Text string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidUser      = errors.New("invalid user id")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyDescription = errors.New("empty description")
)

// ValidUserID reports whether id is one of the two recognized identities.
func ValidUserID(id int64) bool {
	return id == UserOne || id == UserTwo
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (u User) Validate() error {
	if len(strings.TrimSpace(u.Name)) == 0 {
		return ErrEmptyName
	}
	if len(u.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	return nil
}

func (a Amount) Validate() error {
	if !ValidUserID(a.UserID) {
		return ErrInvalidUser
	}
	return a.Value.Validate()
}

func (s Saving) Validate() error {
	if !ValidUserID(s.UserID) {
		return ErrInvalidUser
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	if s.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}
