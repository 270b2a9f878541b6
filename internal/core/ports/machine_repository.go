package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// MachineRepository defines persistence operations for machines. All lookups
// are scoped by the owning user's store id.
type MachineRepository interface {
	Insert(ctx context.Context, m *domain.Machine) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Machine, error)
	// FindByUserAndMachineID retrieves the first machine matching the
	// compound (userID, machineID) key. Returns domain.ErrMachineNotFound
	// when no document matches.
	FindByUserAndMachineID(ctx context.Context, userID, machineID string) (*domain.Machine, error)
	// DeleteByUserAndMachineID removes every machine matching the compound
	// key in a single store command and returns the number deleted.
	DeleteByUserAndMachineID(ctx context.Context, userID, machineID string) (int64, error)
}
