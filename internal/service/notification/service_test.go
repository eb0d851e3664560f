package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/internal/repository/sqlite"
	"github.com/citasmedicas/booking-api/pkg/dateutil"
)

func newTestService(t *testing.T) (*Service, repository.AppointmentRepository) {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	appointments := sqlite.NewAppointmentRepository(db)
	return NewService(appointments, sqlite.NewReminderRepository(db)), appointments
}

func createAppointment(t *testing.T, repo repository.AppointmentRepository, id string, daysFromNow int) {
	t.Helper()
	date := time.Now().AddDate(0, 0, daysFromNow).Format(dateutil.DisplayLayout)
	err := repo.Create(context.Background(), &model.Appointment{
		ID:         id,
		UserID:     "user-1",
		DoctorID:   "doctor_1",
		DoctorName: "Dra. Ana García",
		Specialty:  "Cardiología",
		Date:       date,
		Time:       "10:00",
		Price:      50,
	})
	require.NoError(t, err)
}

func TestUnreadCountTracksUpcoming(t *testing.T) {
	svc, appointments := newTestService(t)
	ctx := context.Background()

	createAppointment(t, appointments, "apt-1", 1)
	createAppointment(t, appointments, "apt-2", 3)
	createAppointment(t, appointments, "apt-past", -3)

	count, err := svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	svc.MarkAsRead("apt-1")
	assert.True(t, svc.IsRead("apt-1"))

	count, err = svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	svc, appointments := newTestService(t)
	ctx := context.Background()

	createAppointment(t, appointments, "apt-1", 1)

	svc.MarkAsRead("apt-1")
	svc.MarkAsRead("apt-1")

	count, err := svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReminderLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reminder := &model.Reminder{
		ID:            "rem-1",
		UserID:        "user-1",
		AppointmentID: "apt-1",
		TriggerAt:     time.Now().Add(24 * time.Hour),
		Enabled:       true,
	}
	require.NoError(t, svc.UpsertReminder(ctx, reminder))

	listed, err := svc.ListReminders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "apt-1", listed[0].AppointmentID)

	require.NoError(t, svc.DeleteReminder(ctx, "rem-1"))

	listed, err = svc.ListReminders(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
