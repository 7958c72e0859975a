// Package profile implements wardrobe owner management.
package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

type profileRepo interface {
	Create(ctx context.Context, p domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements profile business logic.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new Profile service.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}

// Create registers a new profile. The first profile in the system becomes
// the owner.
func (s *Service) Create(ctx context.Context, name string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, domain.NewValidationError("name", "must not be empty")
	}

	existing, err := s.profiles.List(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{
		ID:        uuid.New(),
		Name:      name,
		IsOwner:   len(existing) == 0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		return domain.Profile{}, err
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("profile_id", p.ID.String()),
		slog.Bool("is_owner", p.IsOwner),
	)
	return p, nil
}

// Get returns one profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// List returns all profiles, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

// Delete removes a profile and everything scoped to it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "profile deleted", slog.String("profile_id", id.String()))
	return nil
}
