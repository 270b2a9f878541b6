package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// CreateUserInput carries the data needed to register a new user.
type CreateUserInput struct {
	Name        string
	Email       string
	CompanyName string
}

// CreateResult is returned by create operations: the store-assigned id.
type CreateResult struct {
	ID string
}

// UserService defines use-case operations over the users collection.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*CreateResult, error)
	List(ctx context.Context) ([]domain.User, error)
	// CheckEmail resolves a user by email; domain.ErrUserNotFound on miss.
	CheckEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateByEmail applies a partial update to every user matching email.
	// domain.ErrUserNotFound when nothing matches.
	UpdateByEmail(ctx context.Context, email string, upd UserUpdate) error
	// DeleteByEmail removes every user matching email (duplicates included).
	// domain.ErrUserNotFound when nothing matches.
	DeleteByEmail(ctx context.Context, email string) error
}
