package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	guard  ports.CreateGuard
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, guard ports.CreateGuard, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, guard: guard, logger: logger}
}

// Create registers a new user. The store has no unique index on email, so a
// pre-write existence check guarded by a short-lived claim rejects duplicate
// signups instead of silently inserting a second document.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.CreateResult, error) {
	key := "user:" + input.Email
	claimed, err := s.guard.Claim(ctx, key)
	if err != nil {
		// Guard outage degrades to the unchecked legacy behavior.
		s.logger.Warn().Err(err).Str("email", input.Email).Msg("create guard unavailable")
	} else if !claimed {
		return nil, domain.ErrUserExists
	} else {
		defer s.guard.Release(ctx, key)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:        input.Name,
		Email:       input.Email,
		CompanyName: input.CompanyName,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("email", input.Email).Str("company", input.CompanyName).Msg("user created")
	return &ports.CreateResult{ID: id}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) CheckEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateByEmail applies a partial update to every user matching email.
// Duplicates from legacy unguarded writes all receive the same update in one
// store command, so a mid-batch partial failure cannot occur.
func (s *UserService) UpdateByEmail(ctx context.Context, email string, upd ports.UserUpdate) error {
	matched, err := s.repo.UpdateByEmail(ctx, email, upd)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrUserNotFound
	}
	if matched > 1 {
		s.logger.Warn().Str("email", email).Int64("matched", matched).Msg("updated multiple users for one email")
	}
	return nil
}

// DeleteByEmail removes every user matching email, guarding against
// duplicates left over from the era before creates were checked.
func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrUserNotFound
	}
	s.logger.Info().Str("email", email).Int64("deleted", deleted).Msg("user deleted")
	return nil
}
