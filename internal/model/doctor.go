package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TimeSlots is an ordered list of HH:mm slot strings stored as a single
// pipe-joined column.
type TimeSlots []string

func (s TimeSlots) Value() (driver.Value, error) {
	return strings.Join(s, "|"), nil
}

func (s *TimeSlots) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeSlots", src)
	}

	if raw == "" {
		*s = nil
		return nil
	}

	parts := strings.Split(raw, "|")
	out := make(TimeSlots, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	*s = out
	return nil
}

// Doctor represents a directory entry. Rows are seeded from the static
// catalog and effectively read-only afterward. CatalogPos preserves catalog
// order so rating ties resolve deterministically.
type Doctor struct {
	ID                   string    `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Specialty            string    `json:"specialty" db:"specialty"`
	Rating               float64   `json:"rating" db:"rating"`
	Reviews              int       `json:"reviews" db:"reviews"`
	Experience           int       `json:"experience" db:"experience"`
	Location             string    `json:"location" db:"location"`
	IsAvailable          bool      `json:"is_available" db:"is_available"`
	Price                int       `json:"price" db:"price"`
	Schedule             TimeSlots `json:"schedule" db:"schedule"`
	ImageURL             string    `json:"image_url" db:"image_url"`
	Description          string    `json:"description" db:"description"`
	PhoneNumber          string    `json:"phone_number" db:"phone_number"`
	SupportsTelemedicine bool      `json:"supports_telemedicine" db:"supports_telemedicine"`
	CatalogPos           int       `json:"-" db:"catalog_pos"`
}
