package domain

import (
	"errors"
	"time"
)

var ErrMachineNotFound = errors.New("machine not found")
var ErrMachineExists = errors.New("machine already exists")

// Machine is a monitored endpoint owned by exactly one user via UserID.
// MachineID is the human-assigned identifier, unique within a user; the
// frontend addresses machines only by the (userEmail, machineId) pair.
type Machine struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	MachineID string    `json:"machineId" bson:"machineId"`
	Location  string    `json:"location" bson:"location"`
	UserID    string    `json:"userId" bson:"userId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
