package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/citasmedicas/booking-api/internal/model"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
	"github.com/citasmedicas/booking-api/pkg/dateutil"
)

// appointmentRow is the stored shape: dates in the sortable form, times in
// 24h form. Conversion to the display form happens here, at the boundary.
type appointmentRow struct {
	ID         string `db:"id"`
	UserID     string `db:"user_id"`
	DoctorID   string `db:"doctor_id"`
	DoctorName string `db:"doctor_name"`
	Specialty  string `db:"specialty"`
	DateISO    string `db:"date_iso"`
	Time24     string `db:"time_24"`
	Reason     string `db:"reason"`
	Price      int    `db:"price"`
}

func toRow(a *model.Appointment) appointmentRow {
	return appointmentRow{
		ID:         a.ID,
		UserID:     a.UserID,
		DoctorID:   a.DoctorID,
		DoctorName: a.DoctorName,
		Specialty:  a.Specialty,
		DateISO:    dateutil.DisplayToSortable(a.Date),
		Time24:     dateutil.DisplayToTime24(a.Time),
		Reason:     a.Reason,
		Price:      a.Price,
	}
}

func (row appointmentRow) toModel() *model.Appointment {
	return &model.Appointment{
		ID:         row.ID,
		UserID:     row.UserID,
		DoctorID:   row.DoctorID,
		DoctorName: row.DoctorName,
		Specialty:  row.Specialty,
		Date:       dateutil.SortableToDisplay(row.DateISO),
		Time:       dateutil.Time24ToDisplay(row.Time24),
		Reason:     row.Reason,
		Price:      row.Price,
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	defer r.rec.observe("create", "appointments", time.Now())

	query := `
		INSERT INTO appointments (
			id, user_id, doctor_id, doctor_name, specialty,
			date_iso, time_24, reason, price
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	row := toRow(appointment)
	_, err := r.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.DoctorID, row.DoctorName, row.Specialty,
		row.DateISO, row.Time24, row.Reason, row.Price,
	)
	if err != nil {
		if isConstraintErr(err) {
			return apperrors.Conflict("appointment already exists", err)
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	defer r.rec.observe("get", "appointments", time.Now())

	query := `
		SELECT id, user_id, doctor_id, doctor_name, specialty,
		       date_iso, time_24, reason, price
		FROM appointments
		WHERE id = ?
	`
	var row appointmentRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return row.toModel(), nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	defer r.rec.observe("update", "appointments", time.Now())

	query := `
		UPDATE appointments
		SET user_id = ?, doctor_id = ?, doctor_name = ?, specialty = ?,
		    date_iso = ?, time_24 = ?, reason = ?, price = ?
		WHERE id = ?
	`
	row := toRow(appointment)
	result, err := r.db.ExecContext(ctx, query,
		row.UserID, row.DoctorID, row.DoctorName, row.Specialty,
		row.DateISO, row.Time24, row.Reason, row.Price, row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

// Delete never fails on an absent id.
func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	defer r.rec.observe("delete", "appointments", time.Now())

	if _, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) ListAll(ctx context.Context, userID string) ([]*model.Appointment, error) {
	defer r.rec.observe("list_all", "appointments", time.Now())

	query := `
		SELECT id, user_id, doctor_id, doctor_name, specialty,
		       date_iso, time_24, reason, price
		FROM appointments
		WHERE user_id = ?
		ORDER BY date_iso ASC, time_24 ASC
	`
	return r.selectAppointments(ctx, query, userID)
}

func (r *appointmentRepository) ListUpcoming(ctx context.Context, userID, todayISO string) ([]*model.Appointment, error) {
	defer r.rec.observe("list_upcoming", "appointments", time.Now())

	query := `
		SELECT id, user_id, doctor_id, doctor_name, specialty,
		       date_iso, time_24, reason, price
		FROM appointments
		WHERE user_id = ? AND date_iso >= ?
		ORDER BY date_iso ASC, time_24 ASC
	`
	return r.selectAppointments(ctx, query, userID, todayISO)
}

func (r *appointmentRepository) ListPast(ctx context.Context, userID, todayISO string) ([]*model.Appointment, error) {
	defer r.rec.observe("list_past", "appointments", time.Now())

	query := `
		SELECT id, user_id, doctor_id, doctor_name, specialty,
		       date_iso, time_24, reason, price
		FROM appointments
		WHERE user_id = ? AND date_iso < ?
		ORDER BY date_iso DESC, time_24 DESC
	`
	return r.selectAppointments(ctx, query, userID, todayISO)
}

func (r *appointmentRepository) selectAppointments(ctx context.Context, query string, args ...interface{}) ([]*model.Appointment, error) {
	var rows []appointmentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointments := make([]*model.Appointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, row.toModel())
	}
	return appointments, nil
}
