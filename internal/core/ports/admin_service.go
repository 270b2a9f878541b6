package ports

import (
	"context"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// CreateAdminInput carries the data needed to register a company admin.
type CreateAdminInput struct {
	Name        string
	Email       string
	CompanyName string
}

// CompanyUsersResult is the admin fan-out view: the admin's company plus
// every user whose companyName matches it exactly. Users is never nil; an
// admin with no users gets an empty slice.
type CompanyUsersResult struct {
	CompanyName string
	Users       []domain.User
}

// AdminService defines use-case operations over the admin collection.
type AdminService interface {
	Create(ctx context.Context, input CreateAdminInput) (*CreateResult, error)
	List(ctx context.Context) ([]domain.Admin, error)
	// CheckEmail resolves an admin by email; domain.ErrAdminNotFound on miss.
	CheckEmail(ctx context.Context, email string) (*domain.Admin, error)
	// CompanyUsers resolves the admin by email, then lists all users in the
	// admin's company. domain.ErrAdminNotFound when the admin is missing;
	// an empty user set is success, not an error.
	CompanyUsers(ctx context.Context, adminEmail string) (*CompanyUsersResult, error)
}
