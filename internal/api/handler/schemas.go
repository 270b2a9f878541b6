package handler

import "github.com/dotwatch/dotwatch-api/internal/core/domain"

// errorResponse is the error envelope used for unexpected failures and for
// the admin fan-out's not-found case (a contract the frontend depends on).
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries a human-readable outcome message.
type messageResponse struct {
	Message string `json:"message"`
}

// createdResponse is returned by all create operations.
type createdResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// conflictResponse is returned when a duplicate-key create is rejected.
type conflictResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- User schemas ---

type createUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

// updateUserRequest uses pointer fields so "absent" and "present with a zero
// value" are distinguishable: nil fields are left untouched, non-nil zero
// values intentionally clear the stored field.
type updateUserRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	Age         *int    `json:"age"`
}

type checkUserResponse struct {
	Exists  bool         `json:"exists"`
	User    *domain.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

// --- Admin schemas ---

type createAdminRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

type checkAdminResponse struct {
	Exists  bool          `json:"exists"`
	Admin   *domain.Admin `json:"admin,omitempty"`
	Message string        `json:"message,omitempty"`
}

type companyUsersResponse struct {
	CompanyName string        `json:"companyName"`
	Users       []domain.User `json:"users"`
}

// --- Machine schemas ---

type addMachineRequest struct {
	MachineID string `json:"machineId" validate:"required"`
	Location  string `json:"location"  validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
}

// machineItemResponse deliberately omits the store id: the frontend
// addresses machines only by the (userEmail, machineId) pair.
type machineItemResponse struct {
	MachineID string `json:"machineId"`
	Location  string `json:"location"`
}

type machineListResponse struct {
	Email    string                `json:"email"`
	Machines []machineItemResponse `json:"machines"`
}
