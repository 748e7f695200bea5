package worker

import (
	"context"
	"fmt"
	"log/slog"

	"ahorro/internal/amqp"
	"ahorro/internal/core"
	"ahorro/internal/sheets"
	"ahorro/internal/storage"
)

// BackupSource is the storage surface the worker reads savings from.
type BackupSource interface {
	GetSaving(ctx context.Context, id int64) (*core.Saving, error)
	GetPendingBackupSavings(ctx context.Context, limit int) ([]storage.PendingBackupSaving, error)
	MarkSynced(ctx context.Context, id int64) error
	MarkSyncError(ctx context.Context, id int64) error
}

// BackupWorker copies savings from SQLite to Google Sheets.
type BackupWorker struct {
	source    BackupSource
	sheets    sheets.SavingWriter
	batchSize int
}

func NewBackupWorker(source BackupSource, sheets sheets.SavingWriter, batchSize int) *BackupWorker {
	return &BackupWorker{
		source:    source,
		sheets:    sheets,
		batchSize: batchSize,
	}
}

// HandleBackupMessage processes a single backup message from AMQP.
func (w *BackupWorker) HandleBackupMessage(ctx context.Context, msg *amqp.SavingBackupMessage) error {
	slog.InfoContext(ctx, "Processing backup message",
		"id", msg.ID,
		"version", msg.Version)

	saving, err := w.source.GetSaving(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get saving from storage: %w", err)
	}
	if saving == nil {
		// The row is gone; nothing to back up and no point requeueing.
		slog.WarnContext(ctx, "Saving not found, dropping backup message", "id", msg.ID)
		return nil
	}

	if err := w.backupToSheets(ctx, *saving); err != nil {
		return fmt.Errorf("backup saving to sheets: %w", err)
	}

	return nil
}

// ProcessPendingSavings backs up savings that never made it through AMQP.
// This is the ticker backstop for lost messages.
func (w *BackupWorker) ProcessPendingSavings(ctx context.Context) error {
	pending, err := w.source.GetPendingBackupSavings(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending savings: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending savings", "count", len(pending))

	for _, p := range pending {
		saving, err := w.source.GetSaving(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to get saving", "id", p.ID, "error", err)
			if err := w.source.MarkSyncError(ctx, p.ID); err != nil {
				slog.ErrorContext(ctx, "Failed to mark backup error", "id", p.ID, "error", err)
			}
			continue
		}
		if saving == nil {
			continue
		}

		if err := w.backupToSheets(ctx, *saving); err != nil {
			slog.ErrorContext(ctx, "Failed to back up saving", "id", p.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupBackupCheck drains the pending backlog at worker startup, useful to
// recover from missed AMQP messages or worker downtime.
func (w *BackupWorker) StartupBackupCheck(ctx context.Context) error {
	pending, err := w.source.GetPendingBackupSavings(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending savings for startup check: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending savings found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending savings on startup, processing...",
		"count", len(pending))

	successCount := 0
	errorCount := 0

	for _, p := range pending {
		saving, err := w.source.GetSaving(ctx, p.ID)
		if err != nil || saving == nil {
			slog.ErrorContext(ctx, "Failed to get saving for startup backup",
				"id", p.ID, "error", err)
			if err := w.source.MarkSyncError(ctx, p.ID); err != nil {
				slog.ErrorContext(ctx, "Failed to mark backup error", "id", p.ID, "error", err)
			}
			errorCount++
			continue
		}

		if err := w.backupToSheets(ctx, *saving); err != nil {
			slog.ErrorContext(ctx, "Failed to back up saving during startup",
				"id", p.ID, "error", err)
			errorCount++
			continue
		}

		successCount++
	}

	slog.InfoContext(ctx, "Startup backup completed",
		"total", len(pending),
		"backed_up", successCount,
		"errors", errorCount)

	return nil
}

func (w *BackupWorker) backupToSheets(ctx context.Context, saving core.Saving) error {
	ref, err := w.sheets.Append(ctx, saving)
	if err != nil {
		if markErr := w.source.MarkSyncError(ctx, saving.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark backup error", "id", saving.ID, "error", markErr)
		}
		return fmt.Errorf("append to sheets: %w", err)
	}

	if err := w.source.MarkSynced(ctx, saving.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to mark as backed up", "id", saving.ID, "error", err)
		// Don't return error here - the backup actually worked
	}

	slog.InfoContext(ctx, "Successfully backed up saving",
		"id", saving.ID,
		"sheets_ref", ref,
		"amount_cents", saving.Amount.Cents)

	return nil
}
