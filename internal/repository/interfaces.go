package repository

import (
	"context"

	"github.com/citasmedicas/booking-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type DoctorRepository interface {
	UpsertAll(ctx context.Context, doctors []model.Doctor) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	GetByID(ctx context.Context, id string) (*model.Doctor, error)
	Search(ctx context.Context, query string) ([]*model.Doctor, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error)
	ListByLocation(ctx context.Context, location string) ([]*model.Doctor, error)
	ListTelemedicine(ctx context.Context) ([]*model.Doctor, error)
	ListAvailable(ctx context.Context) ([]*model.Doctor, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Doctor, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	// Delete is tolerant of absent ids; deleting a missing row is not an error.
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context, userID string) ([]*model.Appointment, error)
	ListUpcoming(ctx context.Context, userID, todayISO string) ([]*model.Appointment, error)
	ListPast(ctx context.Context, userID, todayISO string) ([]*model.Appointment, error)
}

type ReminderRepository interface {
	Upsert(ctx context.Context, reminder *model.Reminder) error
	ListByUser(ctx context.Context, userID string) ([]*model.Reminder, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore persists which user, if any, is currently authenticated.
// State survives process restarts until an explicit Clear.
type SessionStore interface {
	SetLoggedIn(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
	CurrentUserID(ctx context.Context) (string, bool, error)
}
