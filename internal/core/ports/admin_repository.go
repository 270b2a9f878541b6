package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// AdminRepository defines persistence operations for admins. Admins are
// read-only after creation: no update or delete path exists.
type AdminRepository interface {
	Insert(ctx context.Context, a *domain.Admin) (string, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	// FindByEmail retrieves the first admin matching email (equality, limit 1).
	// Returns domain.ErrAdminNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
