package notification

import (
	"context"
	"sync"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/pkg/dateutil"
)

// Service tracks in-app notification read state over a user's upcoming
// appointments and manages their reminders. Read markers are per-process
// and reset on restart.
type Service struct {
	appointments repository.AppointmentRepository
	reminders    repository.ReminderRepository

	mu   sync.Mutex
	read map[string]struct{}
}

func NewService(appointments repository.AppointmentRepository, reminders repository.ReminderRepository) *Service {
	return &Service{
		appointments: appointments,
		reminders:    reminders,
		read:         make(map[string]struct{}),
	}
}

func (s *Service) MarkAsRead(appointmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.read[appointmentID] = struct{}{}
}

func (s *Service) IsRead(appointmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.read[appointmentID]
	return ok
}

// UnreadCount counts the user's upcoming appointments not yet marked read.
func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	upcoming, err := s.appointments.ListUpcoming(ctx, userID, dateutil.Today())
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, a := range upcoming {
		if _, ok := s.read[a.ID]; !ok {
			count++
		}
	}
	return count, nil
}

func (s *Service) ListReminders(ctx context.Context, userID string) ([]*model.Reminder, error) {
	return s.reminders.ListByUser(ctx, userID)
}

func (s *Service) UpsertReminder(ctx context.Context, reminder *model.Reminder) error {
	return s.reminders.Upsert(ctx, reminder)
}

func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}
