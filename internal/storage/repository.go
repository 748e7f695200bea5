package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ahorro/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		queries: New(db),
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// --- users ---

func (r *SQLiteRepository) CreateUser(ctx context.Context, u core.User) (core.User, error) {
	row, err := r.queries.CreateUser(ctx, CreateUserParams{Name: u.Name, Color: u.Color})
	if err != nil {
		return core.User{}, fmt.Errorf("create user: %w", err)
	}
	return userToCore(row), nil
}

func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (*core.User, error) {
	row, err := r.queries.GetUser(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u := userToCore(row)
	return &u, nil
}

func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]core.User, error) {
	rows, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]core.User, len(rows))
	for i, row := range rows {
		users[i] = userToCore(row)
	}
	return users, nil
}

// --- montos ---

func (r *SQLiteRepository) CreateAmount(ctx context.Context, a core.Amount) (core.Amount, error) {
	row, err := r.queries.CreateMonto(ctx, CreateMontoParams{
		UserID:     a.UserID,
		ValueCents: a.Value.Cents,
	})
	if err != nil {
		return core.Amount{}, fmt.Errorf("create monto: %w", err)
	}
	return montoToCore(row), nil
}

func (r *SQLiteRepository) GetAmount(ctx context.Context, id int64) (*core.Amount, error) {
	row, err := r.queries.GetMonto(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monto: %w", err)
	}
	a := montoToCore(row)
	return &a, nil
}

func (r *SQLiteRepository) ListAmounts(ctx context.Context, userID int64) ([]core.Amount, error) {
	rows, err := r.queries.ListMontosByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list montos: %w", err)
	}
	amounts := make([]core.Amount, len(rows))
	for i, row := range rows {
		amounts[i] = montoToCore(row)
	}
	return amounts, nil
}

// SelectAmount marks one monto as the user's current pick and clears any
// previous pick. Both writes happen in one transaction.
func (r *SQLiteRepository) SelectAmount(ctx context.Context, userID, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin select monto tx: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeselectMontos(ctx, userID); err != nil {
		return false, fmt.Errorf("deselect montos: %w", err)
	}
	affected, err := qtx.SelectMonto(ctx, id)
	if err != nil {
		return false, fmt.Errorf("select monto: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit select monto tx: %w", err)
	}
	return true, nil
}

// --- ahorros ---

func (r *SQLiteRepository) CreateSaving(ctx context.Context, s core.Saving) (core.Saving, error) {
	montoID := sql.NullInt64{}
	if s.AmountID != 0 {
		montoID = sql.NullInt64{Int64: s.AmountID, Valid: true}
	}
	row, err := r.queries.CreateAhorro(ctx, CreateAhorroParams{
		UserID:      s.UserID,
		MontoID:     montoID,
		AmountCents: s.Amount.Cents,
		Date:        s.Date.UTC(),
	})
	if err != nil {
		return core.Saving{}, fmt.Errorf("create ahorro: %w", err)
	}

	slog.InfoContext(ctx, "Saving recorded in SQLite",
		"id", row.ID,
		"user_id", row.UserID,
		"amount_cents", row.AmountCents,
		"date", row.Date)

	return ahorroToCore(row), nil
}

func (r *SQLiteRepository) ListSavings(ctx context.Context) ([]core.Saving, error) {
	rows, err := r.queries.ListAhorros(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ahorros: %w", err)
	}
	savings := make([]core.Saving, len(rows))
	for i, row := range rows {
		savings[i] = ahorroToCore(row)
	}
	return savings, nil
}

func (r *SQLiteRepository) SumSavings(ctx context.Context) (core.Money, error) {
	total, err := r.queries.SumAhorros(ctx)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum ahorros: %w", err)
	}
	return core.Money{Cents: total}, nil
}

func (r *SQLiteRepository) SumSavingsBetween(ctx context.Context, from, to time.Time) (core.Money, error) {
	total, err := r.queries.SumAhorrosInRange(ctx, SumAhorrosInRangeParams{
		From: from.UTC(),
		To:   to.UTC(),
	})
	if err != nil {
		return core.Money{}, fmt.Errorf("sum ahorros in range: %w", err)
	}
	return core.Money{Cents: total}, nil
}

// GetSaving retrieves a single saving by ID for backup processing.
func (r *SQLiteRepository) GetSaving(ctx context.Context, id int64) (*core.Saving, error) {
	row, err := r.queries.GetAhorro(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ahorro: %w", err)
	}
	s := ahorroToCore(row)
	return &s, nil
}

// PendingBackupSaving carries the minimal data needed for backup queue messages.
type PendingBackupSaving struct {
	ID        int64
	Version   int64
	CreatedAt time.Time
}

// GetPendingBackupSavings returns savings not yet backed up to Google Sheets.
func (r *SQLiteRepository) GetPendingBackupSavings(ctx context.Context, limit int) ([]PendingBackupSaving, error) {
	rows, err := r.queries.GetPendingBackupAhorros(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("get pending backup ahorros: %w", err)
	}
	pending := make([]PendingBackupSaving, len(rows))
	for i, row := range rows {
		pending[i] = PendingBackupSaving{
			ID:        row.ID,
			Version:   row.Version,
			CreatedAt: row.CreatedAt.Time,
		}
	}
	return pending, nil
}

// MarkSynced marks a saving as successfully backed up.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if err := r.queries.MarkAhorroSynced(ctx, id); err != nil {
		return fmt.Errorf("mark ahorro synced: %w", err)
	}
	slog.InfoContext(ctx, "Saving marked as backed up", "id", id)
	return nil
}

// MarkSyncError marks a saving as having backup errors.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if err := r.queries.MarkAhorroSyncError(ctx, id); err != nil {
		return fmt.Errorf("mark ahorro sync error: %w", err)
	}
	slog.WarnContext(ctx, "Saving marked with backup error", "id", id)
	return nil
}

// --- objetivos ---

func (r *SQLiteRepository) ListMilestones(ctx context.Context) ([]core.Milestone, error) {
	rows, err := r.queries.ListObjetivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objetivos: %w", err)
	}
	milestones := make([]core.Milestone, len(rows))
	for i, row := range rows {
		milestones[i] = objetivoToCore(row)
	}
	return milestones, nil
}

// SeedMilestones inserts the milestone ladder, skipping targets already present.
func (r *SQLiteRepository) SeedMilestones(ctx context.Context, targets []core.Money) error {
	for _, t := range targets {
		if err := r.queries.CreateObjetivo(ctx, t.Cents); err != nil {
			return fmt.Errorf("seed objetivo %d: %w", t.Cents, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) CompleteMilestone(ctx context.Context, id int64, at time.Time) error {
	err := r.queries.CompleteObjetivo(ctx, CompleteObjetivoParams{
		CompletedAt: sql.NullTime{Time: at.UTC(), Valid: true},
		ID:          id,
	})
	if err != nil {
		return fmt.Errorf("complete objetivo: %w", err)
	}
	return nil
}

// --- retos ---

func (r *SQLiteRepository) CreateChallenge(ctx context.Context, description string) (core.Challenge, error) {
	row, err := r.queries.CreateReto(ctx, description)
	if err != nil {
		return core.Challenge{}, fmt.Errorf("create reto: %w", err)
	}
	return retoToCore(row), nil
}

func (r *SQLiteRepository) GetChallenge(ctx context.Context, id int64) (*core.Challenge, error) {
	row, err := r.queries.GetReto(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reto: %w", err)
	}
	c := retoToCore(row)
	return &c, nil
}

func (r *SQLiteRepository) AvailableChallenges(ctx context.Context) ([]core.Challenge, error) {
	rows, err := r.queries.ListAvailableRetos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available retos: %w", err)
	}
	challenges := make([]core.Challenge, len(rows))
	for i, row := range rows {
		challenges[i] = retoToCore(row)
	}
	return challenges, nil
}

func (r *SQLiteRepository) ChallengeHistory(ctx context.Context) ([]core.Challenge, error) {
	rows, err := r.queries.ListRetoHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reto history: %w", err)
	}
	challenges := make([]core.Challenge, len(rows))
	for i, row := range rows {
		challenges[i] = retoToCore(row)
	}
	return challenges, nil
}

// ActiveChallenge returns the reto activated after cutoff that is not yet
// completed by both users, or nil when there is none.
func (r *SQLiteRepository) ActiveChallenge(ctx context.Context, cutoff time.Time) (*core.Challenge, error) {
	row, err := r.queries.GetActiveReto(ctx, sql.NullTime{Time: cutoff.UTC(), Valid: true})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active reto: %w", err)
	}
	c := retoToCore(row)
	return &c, nil
}

// ActivateChallengeIfNone activates the reto only when no other reto is
// currently active. The check and the conditional write run in one
// transaction so concurrent activations cannot both succeed.
func (r *SQLiteRepository) ActivateChallengeIfNone(ctx context.Context, id int64, at, cutoff time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin activate reto tx: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	_, err = qtx.GetActiveReto(ctx, sql.NullTime{Time: cutoff.UTC(), Valid: true})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("check active reto: %w", err)
	}

	affected, err := qtx.ActivateReto(ctx, ActivateRetoParams{
		ActivatedAt: sql.NullTime{Time: at.UTC(), Valid: true},
		ID:          id,
	})
	if err != nil {
		return false, fmt.Errorf("activate reto: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit activate reto tx: %w", err)
	}

	slog.InfoContext(ctx, "Reto activated", "id", id, "activated_at", at)
	return true, nil
}

func (r *SQLiteRepository) MarkChallengeCompleted(ctx context.Context, id, userID int64) error {
	var err error
	switch userID {
	case core.UserOne:
		err = r.queries.CompleteRetoUser1(ctx, id)
	case core.UserTwo:
		err = r.queries.CompleteRetoUser2(ctx, id)
	default:
		return core.ErrInvalidUser
	}
	if err != nil {
		return fmt.Errorf("complete reto for user %d: %w", userID, err)
	}
	return nil
}

// MarkPenaltyApplied flips the penalty flag. Returns false when the flag was
// already set, so callers can keep the operation idempotent.
func (r *SQLiteRepository) MarkPenaltyApplied(ctx context.Context, id int64) (bool, error) {
	affected, err := r.queries.ApplyRetoPenalty(ctx, id)
	if err != nil {
		return false, fmt.Errorf("apply reto penalty: %w", err)
	}
	return affected > 0, nil
}

// --- penitencias ---

func (r *SQLiteRepository) ListPenalties(ctx context.Context) ([]core.Penalty, error) {
	rows, err := r.queries.ListPenitencias(ctx)
	if err != nil {
		return nil, fmt.Errorf("list penitencias: %w", err)
	}
	penalties := make([]core.Penalty, len(rows))
	for i, row := range rows {
		penalties[i] = core.Penalty{ID: row.ID, Text: row.Text}
	}
	return penalties, nil
}

func (r *SQLiteRepository) CreatePenalty(ctx context.Context, text string) (core.Penalty, error) {
	row, err := r.queries.CreatePenitencia(ctx, text)
	if err != nil {
		return core.Penalty{}, fmt.Errorf("create penitencia: %w", err)
	}
	return core.Penalty{ID: row.ID, Text: row.Text}, nil
}

// --- row conversions ---

func userToCore(row User) core.User {
	return core.User{ID: row.ID, Name: row.Name, Color: row.Color}
}

func montoToCore(row Monto) core.Amount {
	return core.Amount{
		ID:        row.ID,
		UserID:    row.UserID,
		Value:     core.Money{Cents: row.ValueCents},
		Selected:  row.Selected != 0,
		CreatedAt: row.CreatedAt.Time,
	}
}

func ahorroToCore(row Ahorro) core.Saving {
	return core.Saving{
		ID:       row.ID,
		UserID:   row.UserID,
		AmountID: row.MontoID.Int64,
		Amount:   core.Money{Cents: row.AmountCents},
		Date:     row.Date,
	}
}

func objetivoToCore(row Objetivo) core.Milestone {
	m := core.Milestone{
		ID:        row.ID,
		Target:    core.Money{Cents: row.TargetCents},
		Completed: row.Completed != 0,
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		m.CompletedAt = &t
	}
	return m
}

func retoToCore(row Reto) core.Challenge {
	c := core.Challenge{
		ID:               row.ID,
		Description:      row.Description,
		CompletedByUser1: row.CompletedByUser1 != 0,
		CompletedByUser2: row.CompletedByUser2 != 0,
		PenaltyApplied:   row.PenaltyApplied != 0,
	}
	if row.ActivatedAt.Valid {
		t := row.ActivatedAt.Time
		c.ActivatedAt = &t
	}
	return c
}
