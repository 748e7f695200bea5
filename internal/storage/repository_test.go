package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ahorro/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMigrationsSeedUsersAndPenalties(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 seeded users, got %d", len(users))
	}
	if users[0].ID != core.UserOne || users[1].ID != core.UserTwo {
		t.Errorf("unexpected user ids: %d, %d", users[0].ID, users[1].ID)
	}
	if users[0].Color != "person1" || users[1].Color != "person2" {
		t.Errorf("unexpected user colors: %q, %q", users[0].Color, users[1].Color)
	}

	penalties, err := repo.ListPenalties(ctx)
	if err != nil {
		t.Fatalf("list penalties: %v", err)
	}
	if len(penalties) == 0 {
		t.Error("expected seeded penalty pool")
	}
}

func TestCreateSavingAndSum(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	date := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	saved, err := repo.CreateSaving(ctx, core.Saving{
		UserID: core.UserOne,
		Amount: core.Money{Cents: 50_000_00},
		Date:   date,
	})
	if err != nil {
		t.Fatalf("create saving: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected assigned id")
	}

	if _, err := repo.CreateSaving(ctx, core.Saving{
		UserID: core.UserTwo,
		Amount: core.Money{Cents: 30_000_00},
		Date:   date.AddDate(0, 1, 0),
	}); err != nil {
		t.Fatalf("create second saving: %v", err)
	}

	total, err := repo.SumSavings(ctx)
	if err != nil {
		t.Fatalf("sum savings: %v", err)
	}
	if total.Cents != 80_000_00 {
		t.Errorf("total = %d, want 8000000", total.Cents)
	}

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	monthTotal, err := repo.SumSavingsBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("sum savings between: %v", err)
	}
	if monthTotal.Cents != 50_000_00 {
		t.Errorf("month total = %d, want 5000000", monthTotal.Cents)
	}
}

func TestSumSavingsEmptyLedger(t *testing.T) {
	repo := newTestRepo(t)

	total, err := repo.SumSavings(context.Background())
	if err != nil {
		t.Fatalf("sum savings: %v", err)
	}
	if total.Cents != 0 {
		t.Errorf("total = %d, want 0", total.Cents)
	}
}

func TestSeedMilestonesIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SeedMilestones(ctx, core.MilestoneLadder); err != nil {
		t.Fatalf("seed milestones: %v", err)
	}
	if err := repo.SeedMilestones(ctx, core.MilestoneLadder); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	milestones, err := repo.ListMilestones(ctx)
	if err != nil {
		t.Fatalf("list milestones: %v", err)
	}
	if len(milestones) != len(core.MilestoneLadder) {
		t.Fatalf("expected %d milestones, got %d", len(core.MilestoneLadder), len(milestones))
	}
	for i := 1; i < len(milestones); i++ {
		if milestones[i].Target.Cents <= milestones[i-1].Target.Cents {
			t.Errorf("milestones not sorted ascending at index %d", i)
		}
	}
}

func TestCompleteMilestone(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SeedMilestones(ctx, core.MilestoneLadder); err != nil {
		t.Fatalf("seed milestones: %v", err)
	}
	milestones, _ := repo.ListMilestones(ctx)
	at := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.CompleteMilestone(ctx, milestones[0].ID, at); err != nil {
		t.Fatalf("complete milestone: %v", err)
	}

	milestones, _ = repo.ListMilestones(ctx)
	if !milestones[0].Completed {
		t.Error("first milestone should be completed")
	}
	if milestones[0].CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
	if milestones[1].Completed {
		t.Error("second milestone should stay open")
	}
}

func TestActivateChallengeIfNone(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateChallenge(ctx, "Caminar 10km juntos")
	if err != nil {
		t.Fatalf("create reto: %v", err)
	}
	second, err := repo.CreateChallenge(ctx, "Una semana sin delivery")
	if err != nil {
		t.Fatalf("create second reto: %v", err)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-core.ChallengeWindow)

	ok, err := repo.ActivateChallengeIfNone(ctx, first.ID, now, cutoff)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !ok {
		t.Fatal("first activation should succeed")
	}

	// A second activation must be refused while the first is active.
	ok, err = repo.ActivateChallengeIfNone(ctx, second.ID, now, cutoff)
	if err != nil {
		t.Fatalf("second activate: %v", err)
	}
	if ok {
		t.Error("activation should fail while another reto is active")
	}

	active, err := repo.ActiveChallenge(ctx, cutoff)
	if err != nil {
		t.Fatalf("active challenge: %v", err)
	}
	if active == nil || active.ID != first.ID {
		t.Fatalf("active = %+v, want reto %d", active, first.ID)
	}
}

func TestActivateChallengeAlreadyActivated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	reto, err := repo.CreateChallenge(ctx, "Cocinar en casa toda la semana")
	if err != nil {
		t.Fatalf("create reto: %v", err)
	}

	now := time.Now().UTC()
	// Activated long ago and expired; reactivating the same row must fail
	// because activated_at is already set.
	past := now.Add(-48 * time.Hour)
	cutoff := past.Add(-core.ChallengeWindow)
	if ok, err := repo.ActivateChallengeIfNone(ctx, reto.ID, past, cutoff); err != nil || !ok {
		t.Fatalf("initial activation: ok=%v err=%v", ok, err)
	}

	ok, err := repo.ActivateChallengeIfNone(ctx, reto.ID, now, now.Add(-core.ChallengeWindow))
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if ok {
		t.Error("a reto must not be activated twice")
	}
}

func TestExpiredChallengeDoesNotBlockActivation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	expired, _ := repo.CreateChallenge(ctx, "Reto viejo")
	fresh, _ := repo.CreateChallenge(ctx, "Reto nuevo")

	now := time.Now().UTC()
	past := now.Add(-30 * time.Hour)
	if ok, err := repo.ActivateChallengeIfNone(ctx, expired.ID, past, past.Add(-core.ChallengeWindow)); err != nil || !ok {
		t.Fatalf("activate old reto: ok=%v err=%v", ok, err)
	}

	cutoff := now.Add(-core.ChallengeWindow)
	ok, err := repo.ActivateChallengeIfNone(ctx, fresh.ID, now, cutoff)
	if err != nil {
		t.Fatalf("activate fresh reto: %v", err)
	}
	if !ok {
		t.Error("expired reto should not block a new activation")
	}
}

func TestMarkChallengeCompleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	reto, _ := repo.CreateChallenge(ctx, "Leer un libro juntos")
	now := time.Now().UTC()
	repo.ActivateChallengeIfNone(ctx, reto.ID, now, now.Add(-core.ChallengeWindow))

	if err := repo.MarkChallengeCompleted(ctx, reto.ID, core.UserOne); err != nil {
		t.Fatalf("complete user1: %v", err)
	}
	// marking twice is harmless
	if err := repo.MarkChallengeCompleted(ctx, reto.ID, core.UserOne); err != nil {
		t.Fatalf("repeat complete user1: %v", err)
	}
	if err := repo.MarkChallengeCompleted(ctx, reto.ID, core.UserTwo); err != nil {
		t.Fatalf("complete user2: %v", err)
	}
	if err := repo.MarkChallengeCompleted(ctx, reto.ID, 99); err == nil {
		t.Error("expected error for unknown user")
	}

	got, err := repo.GetChallenge(ctx, reto.ID)
	if err != nil {
		t.Fatalf("get reto: %v", err)
	}
	if !got.CompletedByUser1 || !got.CompletedByUser2 {
		t.Errorf("completion flags = %v/%v, want both true", got.CompletedByUser1, got.CompletedByUser2)
	}

	// A fully completed reto is no longer active.
	active, err := repo.ActiveChallenge(ctx, now.Add(-core.ChallengeWindow))
	if err != nil {
		t.Fatalf("active challenge: %v", err)
	}
	if active != nil {
		t.Errorf("active = %+v, want nil", active)
	}
}

func TestMarkPenaltyAppliedOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	reto, _ := repo.CreateChallenge(ctx, "Reto con penitencia")

	applied, err := repo.MarkPenaltyApplied(ctx, reto.ID)
	if err != nil {
		t.Fatalf("apply penalty: %v", err)
	}
	if !applied {
		t.Fatal("first application should succeed")
	}

	applied, err = repo.MarkPenaltyApplied(ctx, reto.ID)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if applied {
		t.Error("penalty must apply at most once")
	}
}

func TestSelectAmountClearsPreviousPick(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a1, err := repo.CreateAmount(ctx, core.Amount{UserID: core.UserOne, Value: core.Money{Cents: 100_000_00}})
	if err != nil {
		t.Fatalf("create monto: %v", err)
	}
	a2, err := repo.CreateAmount(ctx, core.Amount{UserID: core.UserOne, Value: core.Money{Cents: 200_000_00}})
	if err != nil {
		t.Fatalf("create second monto: %v", err)
	}

	if ok, err := repo.SelectAmount(ctx, core.UserOne, a1.ID); err != nil || !ok {
		t.Fatalf("select first monto: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.SelectAmount(ctx, core.UserOne, a2.ID); err != nil || !ok {
		t.Fatalf("select second monto: ok=%v err=%v", ok, err)
	}

	amounts, err := repo.ListAmounts(ctx, core.UserOne)
	if err != nil {
		t.Fatalf("list montos: %v", err)
	}
	for _, a := range amounts {
		want := a.ID == a2.ID
		if a.Selected != want {
			t.Errorf("monto %d selected = %v, want %v", a.ID, a.Selected, want)
		}
	}

	if ok, err := repo.SelectAmount(ctx, core.UserOne, 9999); err != nil {
		t.Fatalf("select missing monto: %v", err)
	} else if ok {
		t.Error("selecting a missing monto should report false")
	}
}

func TestPendingBackupLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	date := time.Now().UTC()
	s1, _ := repo.CreateSaving(ctx, core.Saving{UserID: core.UserOne, Amount: core.Money{Cents: 10_000_00}, Date: date})
	s2, _ := repo.CreateSaving(ctx, core.Saving{UserID: core.UserTwo, Amount: core.Money{Cents: 20_000_00}, Date: date})

	pending, err := repo.GetPendingBackupSavings(ctx, 10)
	if err != nil {
		t.Fatalf("pending backups: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	if err := repo.MarkSynced(ctx, s1.ID); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	if err := repo.MarkSyncError(ctx, s2.ID); err != nil {
		t.Fatalf("mark sync error: %v", err)
	}

	pending, err = repo.GetPendingBackupSavings(ctx, 10)
	if err != nil {
		t.Fatalf("pending backups after marks: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d, want 0", len(pending))
	}
}
