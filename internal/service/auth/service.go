package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/repository"
	"github.com/citasmedicas/booking-api/pkg/auth"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
	"github.com/citasmedicas/booking-api/pkg/security"
)

type Service struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	hasher   security.PasswordHasher
	jwtSvc   auth.JWTService
}

func NewService(users repository.UserRepository, sessions repository.SessionStore,
	hasher security.PasswordHasher, jwtSvc auth.JWTService) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		jwtSvc:   jwtSvc,
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)

	hash, salt, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Salt:         salt,
	}

	// The unique email constraint is the source of truth for duplicates; the
	// repository surfaces it as a conflict.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and opens the device session. An unknown email
// and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	if !s.hasher.Compare(user.PasswordHash, user.Salt, password) {
		return nil, apperrors.InvalidCredentials()
	}

	if err := s.sessions.SetLoggedIn(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{AccessToken: token, User: user}, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// GetCurrentUser resolves the session to a user, or Unauthenticated when no
// session is open.
func (s *Service) GetCurrentUser(ctx context.Context) (*model.User, error) {
	userID, ok, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, apperrors.Unauthenticated(nil)
	}
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of req to the session user.
func (s *Service) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error) {
	return s.jwtSvc.ValidateToken(token)
}
