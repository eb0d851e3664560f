package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/citasmedicas/booking-api/internal/model"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

const doctorColumns = `
	id, name, specialty, rating, reviews, experience, location,
	is_available, price, schedule, image_url, description, phone_number,
	supports_telemedicine, catalog_pos
`

// UpsertAll inserts the catalog with replace-on-conflict semantics so
// re-seeding stays idempotent.
func (r *doctorRepository) UpsertAll(ctx context.Context, doctors []model.Doctor) error {
	defer r.rec.observe("upsert_all", "doctors", time.Now())

	query := `
		INSERT OR REPLACE INTO doctors (` + doctorColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range doctors {
		if _, err := tx.ExecContext(ctx, query,
			d.ID, d.Name, d.Specialty, d.Rating, d.Reviews, d.Experience,
			d.Location, d.IsAvailable, d.Price, d.Schedule, d.ImageURL,
			d.Description, d.PhoneNumber, d.SupportsTelemedicine, d.CatalogPos,
		); err != nil {
			return fmt.Errorf("failed to upsert doctor %s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit doctors: %w", err)
	}
	return nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	defer r.rec.observe("count", "doctors", time.Now())

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	defer r.rec.observe("list", "doctors", time.Now())

	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY catalog_pos ASC`
	return r.selectDoctors(ctx, query)
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*model.Doctor, error) {
	defer r.rec.observe("get", "doctors", time.Now())

	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = ?`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("doctor", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

// Search matches name OR specialty, case-insensitively.
func (r *doctorRepository) Search(ctx context.Context, q string) ([]*model.Doctor, error) {
	defer r.rec.observe("search", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE name LIKE '%' || ? || '%' OR specialty LIKE '%' || ? || '%'
		ORDER BY catalog_pos ASC
	`
	return r.selectDoctors(ctx, query, q, q)
}

func (r *doctorRepository) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	defer r.rec.observe("list_by_specialty", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE specialty LIKE '%' || ? || '%'
		ORDER BY catalog_pos ASC
	`
	return r.selectDoctors(ctx, query, specialty)
}

func (r *doctorRepository) ListByLocation(ctx context.Context, location string) ([]*model.Doctor, error) {
	defer r.rec.observe("list_by_location", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE location LIKE '%' || ? || '%'
		ORDER BY catalog_pos ASC
	`
	return r.selectDoctors(ctx, query, location)
}

func (r *doctorRepository) ListTelemedicine(ctx context.Context) ([]*model.Doctor, error) {
	defer r.rec.observe("list_telemedicine", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE supports_telemedicine = 1
		ORDER BY catalog_pos ASC
	`
	return r.selectDoctors(ctx, query)
}

func (r *doctorRepository) ListAvailable(ctx context.Context) ([]*model.Doctor, error) {
	defer r.rec.observe("list_available", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE is_available = 1
		ORDER BY catalog_pos ASC
	`
	return r.selectDoctors(ctx, query)
}

// ListFeatured returns the top doctors by rating; ties keep catalog order.
func (r *doctorRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Doctor, error) {
	defer r.rec.observe("list_featured", "doctors", time.Now())

	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		ORDER BY rating DESC, catalog_pos ASC
		LIMIT ?
	`
	return r.selectDoctors(ctx, query, limit)
}

func (r *doctorRepository) selectDoctors(ctx context.Context, query string, args ...interface{}) ([]*model.Doctor, error) {
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
