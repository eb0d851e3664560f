package model

import "time"

// Reminder represents a scheduled in-app notification for an appointment.
type Reminder struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	AppointmentID string    `json:"appointment_id" db:"appointment_id"`
	TriggerAt     time.Time `json:"trigger_at" db:"trigger_at"`
	Enabled       bool      `json:"enabled" db:"enabled"`
}
