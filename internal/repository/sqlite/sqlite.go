package sqlite

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/pkg/metrics"
)

// recorder observes store operations when metrics are attached. The zero
// value is a no-op, so repositories can be built without a registry.
type recorder struct {
	m *metrics.Metrics
}

func (r recorder) observe(operation, table string, start time.Time) {
	if r.m == nil {
		return
	}
	r.m.DatabaseOperations.WithLabelValues(operation, table).Inc()
	r.m.DatabaseLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// Option configures the repositories built by this package.
type Option func(*recorder)

// WithMetrics attaches per-operation counters and latency histograms.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *recorder) { r.m = m }
}

func newRecorder(opts []Option) recorder {
	var rec recorder
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

type userRepository struct {
	db  *sqlx.DB
	rec recorder
}

type doctorRepository struct {
	db  *sqlx.DB
	rec recorder
}

type appointmentRepository struct {
	db  *sqlx.DB
	rec recorder
}

type reminderRepository struct {
	db  *sqlx.DB
	rec recorder
}

func NewUserRepository(db *sqlx.DB, opts ...Option) repository.UserRepository {
	return &userRepository{db: db, rec: newRecorder(opts)}
}

func NewDoctorRepository(db *sqlx.DB, opts ...Option) repository.DoctorRepository {
	return &doctorRepository{db: db, rec: newRecorder(opts)}
}

func NewAppointmentRepository(db *sqlx.DB, opts ...Option) repository.AppointmentRepository {
	return &appointmentRepository{db: db, rec: newRecorder(opts)}
}

func NewReminderRepository(db *sqlx.DB, opts ...Option) repository.ReminderRepository {
	return &reminderRepository{db: db, rec: newRecorder(opts)}
}

// isConstraintErr reports whether err is a unique/primary-key violation.
func isConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
