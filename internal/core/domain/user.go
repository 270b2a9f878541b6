package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User is a dashboard account grouped under a company tenant. Email is the
// key the frontend uses for every lookup; the store has no unique index on
// it, so uniqueness is enforced at write time by the service layer.
type User struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	CompanyName string    `json:"companyName" bson:"companyName"`
	Age         int       `json:"age,omitempty" bson:"age,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
