package services

import "errors"

// Sentinel errors the HTTP layer maps onto status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrChallengeActive    = errors.New("a challenge is already active")
	ErrChallengeExpired   = errors.New("challenge has expired")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrNoChallenges       = errors.New("no challenges available")
	ErrNoPenalties        = errors.New("no penalties available")
)
