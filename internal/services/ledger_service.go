package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ahorro/internal/core"
)

// LedgerStore is the storage surface for users, montos and savings.
type LedgerStore interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u core.User) (core.User, error)
	GetUser(ctx context.Context, id int64) (*core.User, error)
	ListUsers(ctx context.Context) ([]core.User, error)

	CreateAmount(ctx context.Context, a core.Amount) (core.Amount, error)
	GetAmount(ctx context.Context, id int64) (*core.Amount, error)
	ListAmounts(ctx context.Context, userID int64) ([]core.Amount, error)
	SelectAmount(ctx context.Context, userID, id int64) (bool, error)

	CreateSaving(ctx context.Context, s core.Saving) (core.Saving, error)
	ListSavings(ctx context.Context) ([]core.Saving, error)
}

// BackupPublisher queues a saving for asynchronous backup.
type BackupPublisher interface {
	PublishSavingBackup(ctx context.Context, id, version int64) error
}

// LedgerService records contributions. Savings are written to SQLite first
// and then queued for backup; a backup failure never fails the request.
type LedgerService struct {
	store     LedgerStore
	publisher BackupPublisher
}

func NewLedgerService(store LedgerStore, publisher BackupPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
	}
}

// CreateSaving appends one immutable contribution to the ledger.
func (s *LedgerService) CreateSaving(ctx context.Context, saving core.Saving) (core.Saving, error) {
	if saving.Date.IsZero() {
		saving.Date = time.Now()
	}
	if err := saving.Validate(); err != nil {
		return core.Saving{}, err
	}

	saved, err := s.store.CreateSaving(ctx, saving)
	if err != nil {
		return core.Saving{}, fmt.Errorf("save contribution: %w", err)
	}

	if err := s.publishBackup(ctx, saved.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish backup message",
			"id", saved.ID, "error", err)
		// Don't fail the request - the saving is stored locally
	}

	return saved, nil
}

func (s *LedgerService) publishBackup(ctx context.Context, id int64) error {
	if s.publisher == nil {
		slog.WarnContext(ctx, "Backup publisher not available, skipping backup message")
		return nil
	}
	return s.publisher.PublishSavingBackup(ctx, id, 1)
}

// Savings lists every recorded contribution, newest first.
func (s *LedgerService) Savings(ctx context.Context) ([]core.Saving, error) {
	return s.store.ListSavings(ctx)
}

func (s *LedgerService) CreateUser(ctx context.Context, name, color string) (core.User, error) {
	u := core.User{Name: name, Color: color}
	if err := u.Validate(); err != nil {
		return core.User{}, err
	}
	return s.store.CreateUser(ctx, u)
}

func (s *LedgerService) User(ctx context.Context, id int64) (core.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return core.User{}, ErrNotFound
	}
	return *u, nil
}

func (s *LedgerService) Users(ctx context.Context) ([]core.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *LedgerService) CreateAmount(ctx context.Context, userID int64, value core.Money) (core.Amount, error) {
	a := core.Amount{UserID: userID, Value: value}
	if err := a.Validate(); err != nil {
		return core.Amount{}, err
	}
	return s.store.CreateAmount(ctx, a)
}

func (s *LedgerService) Amounts(ctx context.Context, userID int64) ([]core.Amount, error) {
	if !core.ValidUserID(userID) {
		return nil, core.ErrInvalidUser
	}
	return s.store.ListAmounts(ctx, userID)
}

// SelectAmount marks a monto as the user's current pick.
func (s *LedgerService) SelectAmount(ctx context.Context, userID, id int64) (core.Amount, error) {
	if !core.ValidUserID(userID) {
		return core.Amount{}, core.ErrInvalidUser
	}
	ok, err := s.store.SelectAmount(ctx, userID, id)
	if err != nil {
		return core.Amount{}, fmt.Errorf("select monto: %w", err)
	}
	if !ok {
		return core.Amount{}, ErrNotFound
	}
	selected, err := s.store.GetAmount(ctx, id)
	if err != nil {
		return core.Amount{}, fmt.Errorf("get monto: %w", err)
	}
	if selected == nil {
		return core.Amount{}, ErrNotFound
	}
	return *selected, nil
}

// Init verifies the database is reachable. Schema and seed data are managed
// by migrations, so this is safe to call any number of times.
func (s *LedgerService) Init(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
