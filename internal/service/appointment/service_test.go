package appointment

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/internal/repository/sqlite"
	"github.com/citasmedicas/booking-api/internal/seed"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

type testEnv struct {
	svc       *Service
	reminders repository.ReminderRepository
	sessions  repository.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	seedCatalog(t, db)

	reminders := sqlite.NewReminderRepository(db)
	sessions := sqlite.NewSessionStore(db)

	return &testEnv{
		svc: NewService(
			sqlite.NewAppointmentRepository(db),
			sqlite.NewDoctorRepository(db),
			reminders,
			sessions,
		),
		reminders: reminders,
		sessions:  sessions,
	}
}

func seedCatalog(t *testing.T, db *sqlx.DB) {
	t.Helper()
	seeder := seed.NewSeeder(sqlite.NewDoctorRepository(db))
	_, err := seeder.Run(context.Background())
	require.NoError(t, err)
}

func (e *testEnv) login(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.sessions.SetLoggedIn(context.Background(), userID))
}

func TestCreateAppointmentCopiesDoctorFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_2",
		Date:     "28/10/2025",
		Time:     "14:30",
		Reason:   "Consulta general",
	})
	require.NoError(t, err)

	fetched, err := env.svc.GetAppointment(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Carlos Ramírez", fetched.DoctorName)
	assert.Equal(t, "Neurología", fetched.Specialty)
	assert.Equal(t, 60, fetched.Price)
	assert.Equal(t, "28/10/2025", fetched.Date)
	assert.Equal(t, "14:30", fetched.Time)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "user-1")

	_, err := env.svc.CreateAppointment(context.Background(), "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_999",
		Date:     "28/10/2025",
		Time:     "14:30",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestCreateAppointmentRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateAppointment(context.Background(), "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthenticated))
}

func TestCreateAppointmentRejectsSessionMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "someone-else")

	_, err := env.svc.CreateAppointment(context.Background(), "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthenticated))
}

func TestCreateAppointmentSchedulesReminder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "14:30",
	})
	require.NoError(t, err)

	reminders, err := env.reminders.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, created.ID, reminders[0].AppointmentID)
	assert.True(t, reminders[0].Enabled)

	// One day before the slot.
	assert.Equal(t, "2025-10-27 14:30", reminders[0].TriggerAt.Format("2006-01-02 15:04"))
}

func TestGetAppointmentHidesOtherUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
	})
	require.NoError(t, err)

	_, err = env.svc.GetAppointment(ctx, "user-2", created.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestUpdateAppointmentReprograms(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
		Reason:   "Control",
	})
	require.NoError(t, err)

	updated, err := env.svc.UpdateAppointment(ctx, "user-1", created.ID, &model.UpdateAppointmentRequest{
		Date:   "30/10/2025",
		Time:   "16:00",
		Reason: "Control anual",
	})
	require.NoError(t, err)
	assert.Equal(t, "30/10/2025", updated.Date)
	assert.Equal(t, "16:00", updated.Time)
	assert.Equal(t, "Control anual", updated.Reason)

	// Doctor snapshot survives the update.
	assert.Equal(t, created.DoctorName, updated.DoctorName)
	assert.Equal(t, created.Price, updated.Price)
}

func TestCancelAppointmentHidesOtherUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
	})
	require.NoError(t, err)

	env.login(t, "user-2")
	err = env.svc.CancelAppointment(ctx, "user-2", created.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))

	// The booking survives.
	kept, err := env.svc.GetAppointment(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, kept.ID)
}

func TestCancelAppointmentIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "user-1")

	created, err := env.svc.CreateAppointment(ctx, "user-1", &model.CreateAppointmentRequest{
		DoctorID: "doctor_1",
		Date:     "28/10/2025",
		Time:     "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.CancelAppointment(ctx, "user-1", created.ID))
	require.NoError(t, env.svc.CancelAppointment(ctx, "user-1", created.ID))

	_, err = env.svc.GetAppointment(ctx, "user-1", created.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
