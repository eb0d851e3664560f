// Package seed populates the doctor table from the static catalog on first
// run. Seeding is an explicit startup step: callers run it before serving
// traffic and get a definite success or failure back.
package seed

import (
	"context"
	"fmt"

	"github.com/citasmedicas/booking-api/internal/repository"
)

type Seeder struct {
	doctors repository.DoctorRepository
}

func NewSeeder(doctors repository.DoctorRepository) *Seeder {
	return &Seeder{doctors: doctors}
}

// Run seeds the catalog if the doctor table is empty and returns the number
// of doctors present afterwards. Re-running is idempotent: inserts replace
// on conflict and a populated table is left untouched.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	count, err := s.doctors.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check doctor table: %w", err)
	}
	if count > 0 {
		return count, nil
	}

	catalog := Catalog()
	for i := range catalog {
		catalog[i].CatalogPos = i
	}

	if err := s.doctors.UpsertAll(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to seed doctors: %w", err)
	}
	return len(catalog), nil
}
