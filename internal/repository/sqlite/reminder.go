package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/citasmedicas/booking-api/internal/model"
)

func (r *reminderRepository) Upsert(ctx context.Context, reminder *model.Reminder) error {
	defer r.rec.observe("upsert", "reminders", time.Now())

	query := `
		INSERT OR REPLACE INTO reminders (id, user_id, appointment_id, trigger_at, enabled)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.AppointmentID,
		reminder.TriggerAt,
		reminder.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert reminder: %w", err)
	}
	return nil
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID string) ([]*model.Reminder, error) {
	defer r.rec.observe("list_by_user", "reminders", time.Now())

	query := `
		SELECT id, user_id, appointment_id, trigger_at, enabled
		FROM reminders
		WHERE user_id = ?
		ORDER BY trigger_at ASC
	`
	var reminders []*model.Reminder
	if err := r.db.SelectContext(ctx, &reminders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	defer r.rec.observe("delete", "reminders", time.Now())

	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
