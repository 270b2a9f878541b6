package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// UserUpdate carries the mutable user fields for a partial update. Nil
// pointers mean "leave untouched"; a non-nil pointer to a zero value is an
// intentional clear. This distinction is what lets callers blank a field.
type UserUpdate struct {
	Name        *string
	CompanyName *string
	Age         *int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (string, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByEmail retrieves the first user matching email (equality, limit 1).
	// Returns domain.ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCompany(ctx context.Context, companyName string) ([]domain.User, error)
	// UpdateByEmail applies upd to every document matching email in a single
	// store command and returns the number of matched documents.
	UpdateByEmail(ctx context.Context, email string, upd UserUpdate) (int64, error)
	// DeleteByEmail removes every document matching email in a single store
	// command and returns the number of deleted documents.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
