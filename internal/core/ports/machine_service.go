package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// AddMachineInput carries the data needed to register a machine under the
// user identified by UserEmail.
type AddMachineInput struct {
	MachineID string
	Location  string
	UserEmail string
}

// MachineListResult is the machines-by-user view.
type MachineListResult struct {
	Email    string
	Machines []domain.Machine
}

// MachineService defines use-case operations over machines. Every operation
// is a two-step protocol: resolve the owning user by email, then operate on
// machines scoped by the resolved user id.
type MachineService interface {
	// Add registers a machine under the user resolved from input.UserEmail.
	// domain.ErrUserNotFound when the user is missing,
	// domain.ErrMachineExists when the (user, machineId) pair already exists.
	Add(ctx context.Context, input AddMachineInput) (*CreateResult, error)
	// ListForUser returns all machines owned by the user with this email.
	// domain.ErrUserNotFound when the user is missing; zero machines is
	// success with an empty (non-nil) slice.
	ListForUser(ctx context.Context, email string) (*MachineListResult, error)
	// Delete removes every machine matching (resolve(email), machineID).
	// domain.ErrUserNotFound / domain.ErrMachineNotFound accordingly.
	Delete(ctx context.Context, email, machineID string) error
}
