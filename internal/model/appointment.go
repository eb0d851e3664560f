package model

// Appointment represents a booked consultation. Date carries the display
// form (dd/MM/yyyy); the repository translates to the sortable form at the
// storage boundary. DoctorName, Specialty and Price are denormalized from
// the doctor at creation time.
type Appointment struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
	Price      int    `json:"price"`
}

// CreateAppointmentRequest represents booking parameters
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason"`
}

// UpdateAppointmentRequest represents reprogram parameters; only date, time
// and reason are mutable after booking.
type UpdateAppointmentRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}
