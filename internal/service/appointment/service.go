package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/pkg/dateutil"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

const reminderLead = 24 * time.Hour

type Service struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	reminders    repository.ReminderRepository
	sessions     repository.SessionStore
}

func NewService(appointments repository.AppointmentRepository, doctors repository.DoctorRepository,
	reminders repository.ReminderRepository, sessions repository.SessionStore) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		reminders:    reminders,
		sessions:     sessions,
	}
}

// requireSession verifies that actorID owns the open device session.
func (s *Service) requireSession(ctx context.Context, actorID string) error {
	userID, ok, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if !ok || userID != actorID {
		return apperrors.Unauthenticated(nil)
	}
	return nil
}

// CreateAppointment books a slot. Doctor name, specialty and price are
// copied from the doctor record at creation time.
func (s *Service) CreateAppointment(ctx context.Context, actorID string, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.requireSession(ctx, actorID); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:         uuid.New().String(),
		UserID:     actorID,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Specialty:  doctor.Specialty,
		Date:       req.Date,
		Time:       req.Time,
		Reason:     req.Reason,
		Price:      doctor.Price,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	// Best effort: a reminder that cannot be scheduled never fails a booking.
	if triggerAt, ok := reminderTrigger(appointment); ok {
		reminder := &model.Reminder{
			ID:            uuid.New().String(),
			UserID:        actorID,
			AppointmentID: appointment.ID,
			TriggerAt:     triggerAt,
			Enabled:       true,
		}
		_ = s.reminders.Upsert(ctx, reminder)
	}

	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, actorID, id string) (*model.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != actorID {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return appointment, nil
}

// UpdateAppointment reprograms an existing booking. Only date, time and
// reason are mutable.
func (s *Service) UpdateAppointment(ctx context.Context, actorID, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if err := s.requireSession(ctx, actorID); err != nil {
		return nil, err
	}

	appointment, err := s.GetAppointment(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.Reason = req.Reason

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// CancelAppointment removes one of the actor's bookings. Cancelling an id
// that is already absent succeeds; another user's booking is never touched.
func (s *Service) CancelAppointment(ctx context.Context, actorID, id string) error {
	if err := s.requireSession(ctx, actorID); err != nil {
		return err
	}

	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if appointment.UserID != actorID {
		return apperrors.NotFound("appointment", nil)
	}

	return s.appointments.Delete(ctx, id)
}

func (s *Service) ListUpcomingAppointments(ctx context.Context, userID string) ([]*model.Appointment, error) {
	return s.appointments.ListUpcoming(ctx, userID, dateutil.Today())
}

func (s *Service) ListPastAppointments(ctx context.Context, userID string) ([]*model.Appointment, error) {
	return s.appointments.ListPast(ctx, userID, dateutil.Today())
}

func (s *Service) ListAllAppointments(ctx context.Context, userID string) ([]*model.Appointment, error) {
	return s.appointments.ListAll(ctx, userID)
}

// reminderTrigger computes the reminder instant, one day before the slot.
func reminderTrigger(a *model.Appointment) (time.Time, bool) {
	slot, err := time.Parse(dateutil.SortableLayout+" 15:04",
		dateutil.DisplayToSortable(a.Date)+" "+a.Time)
	if err != nil {
		return time.Time{}, false
	}
	return slot.Add(-reminderLead), true
}
