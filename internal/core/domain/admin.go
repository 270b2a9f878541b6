package domain

import (
	"errors"
	"time"
)

var ErrAdminNotFound = errors.New("admin not found")
var ErrAdminExists = errors.New("admin already exists")

// Admin represents one company's administrator. There is no explicit company
// entity: an admin's CompanyName is the join key to that company's users,
// compared exactly (case- and whitespace-sensitive).
type Admin struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	CompanyName string    `json:"companyName" bson:"companyName"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
