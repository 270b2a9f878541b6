package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

type MachineService struct {
	machines ports.MachineRepository
	users    ports.UserRepository
	guard    ports.CreateGuard
	logger   zerolog.Logger
}

func NewMachineService(machines ports.MachineRepository, users ports.UserRepository, guard ports.CreateGuard, logger zerolog.Logger) *MachineService {
	return &MachineService{machines: machines, users: users, guard: guard, logger: logger}
}

// Add registers a machine under the user resolved from input.UserEmail.
// The machineId is unique within the owning user by contract; the same
// claim-then-check pattern as user creation enforces it at write time.
func (s *MachineService) Add(ctx context.Context, input ports.AddMachineInput) (*ports.CreateResult, error) {
	owner, err := s.users.FindByEmail(ctx, input.UserEmail)
	if err != nil {
		return nil, err
	}

	key := "machine:" + owner.ID + ":" + input.MachineID
	claimed, err := s.guard.Claim(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("machineId", input.MachineID).Msg("create guard unavailable")
	} else if !claimed {
		return nil, domain.ErrMachineExists
	} else {
		defer s.guard.Release(ctx, key)
	}

	if _, err := s.machines.FindByUserAndMachineID(ctx, owner.ID, input.MachineID); err == nil {
		return nil, domain.ErrMachineExists
	} else if !errors.Is(err, domain.ErrMachineNotFound) {
		return nil, err
	}

	machine := &domain.Machine{
		MachineID: input.MachineID,
		Location:  input.Location,
		UserID:    owner.ID,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.machines.Insert(ctx, machine)
	if err != nil {
		s.logger.Error().Err(err).Str("machineId", input.MachineID).Str("userEmail", input.UserEmail).Msg("failed to create machine")
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("machineId", input.MachineID).Str("userEmail", input.UserEmail).Msg("machine created")
	return &ports.CreateResult{ID: id}, nil
}

// ListForUser returns all machines owned by the user with this email. A user
// with no machines yields an empty slice, not an error: 404 is reserved for
// the missing parent user.
func (s *MachineService) ListForUser(ctx context.Context, email string) (*ports.MachineListResult, error) {
	owner, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	machines, err := s.machines.FindByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if machines == nil {
		machines = []domain.Machine{}
	}

	return &ports.MachineListResult{Email: email, Machines: machines}, nil
}

// Delete removes every machine matching (resolve(email), machineID). The
// compound filter keeps machines with the same machineId under a different
// user untouched.
func (s *MachineService) Delete(ctx context.Context, email, machineID string) error {
	owner, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	deleted, err := s.machines.DeleteByUserAndMachineID(ctx, owner.ID, machineID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrMachineNotFound
	}

	s.logger.Info().Str("machineId", machineID).Str("userEmail", email).Int64("deleted", deleted).Msg("machine deleted")
	return nil
}
