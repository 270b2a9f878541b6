package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

type AdminService struct {
	admins ports.AdminRepository
	users  ports.UserRepository
	guard  ports.CreateGuard
	logger zerolog.Logger
}

func NewAdminService(admins ports.AdminRepository, users ports.UserRepository, guard ports.CreateGuard, logger zerolog.Logger) *AdminService {
	return &AdminService{admins: admins, users: users, guard: guard, logger: logger}
}

// Create registers a company admin with the same duplicate-email guard as
// user creation.
func (s *AdminService) Create(ctx context.Context, input ports.CreateAdminInput) (*ports.CreateResult, error) {
	key := "admin:" + input.Email
	claimed, err := s.guard.Claim(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", input.Email).Msg("create guard unavailable")
	} else if !claimed {
		return nil, domain.ErrAdminExists
	} else {
		defer s.guard.Release(ctx, key)
	}

	if _, err := s.admins.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrAdminExists
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	adm := &domain.Admin{
		Name:        input.Name,
		Email:       input.Email,
		CompanyName: input.CompanyName,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.admins.Insert(ctx, adm)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create admin")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("email", input.Email).Str("company", input.CompanyName).Msg("admin created")
	return &ports.CreateResult{ID: id}, nil
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.FindAll(ctx)
}

func (s *AdminService) CheckEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return s.admins.FindByEmail(ctx, email)
}

// CompanyUsers is the admin fan-out: resolve the admin by email, then list
// every user whose companyName equals the admin's exactly. An empty user set
// is a successful result; only a missing admin is an error.
func (s *AdminService) CompanyUsers(ctx context.Context, adminEmail string) (*ports.CompanyUsersResult, error) {
	adm, err := s.admins.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindByCompany(ctx, adm.CompanyName)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}

	return &ports.CompanyUsersResult{CompanyName: adm.CompanyName, Users: users}, nil
}
