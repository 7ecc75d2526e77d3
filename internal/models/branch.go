package models

import "time"

// BranchStatus values used on branch records.
const (
	BranchActive   = "Active"
	BranchInactive = "Inactive"
	BranchClosed   = "Closed"
)

// Branch represents a company branch location.
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Region    string    `json:"region"`
	Employees int       `json:"employees"`
	FloorArea float64   `json:"floorArea"` // in square meters
	Status    string    `json:"status"`    // "Active", "Inactive", "Closed"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
