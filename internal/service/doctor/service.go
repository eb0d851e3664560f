package doctor

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
)

const featuredCount = 3

const (
	cacheKeyAll      = "doctors:all"
	cacheKeyFeatured = "doctors:featured"
)

// Service serves the doctor directory. The directory is read-only after
// seeding, so the full and featured listings are cached in-process.
type Service struct {
	doctors repository.DoctorRepository
	cache   *cache.Cache
}

func NewService(doctors repository.DoctorRepository) *Service {
	return &Service{
		doctors: doctors,
		cache:   cache.New(15*time.Minute, 30*time.Minute),
	}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKeyAll); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyAll, doctors, cache.DefaultExpiration)
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) SearchDoctors(ctx context.Context, query string) ([]*model.Doctor, error) {
	return s.doctors.Search(ctx, query)
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	return s.doctors.ListBySpecialty(ctx, specialty)
}

func (s *Service) ListByLocation(ctx context.Context, location string) ([]*model.Doctor, error) {
	return s.doctors.ListByLocation(ctx, location)
}

func (s *Service) ListTelemedicineDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.ListTelemedicine(ctx)
}

func (s *Service) ListAvailableDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.ListAvailable(ctx)
}

// ListFeaturedDoctors returns the top three doctors by rating; equal ratings
// keep catalog order.
func (s *Service) ListFeaturedDoctors(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKeyFeatured); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.ListFeatured(ctx, featuredCount)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyFeatured, doctors, cache.DefaultExpiration)
	return doctors, nil
}
