package models

import "time"

// Vehicle represents a company vehicle assigned to a branch.
type Vehicle struct {
	ID           string    `json:"id"`
	Registration string    `json:"registration"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	BranchSite   string    `json:"branchSite"` // free-text match against Branch.Name
	AssignedTo   string    `json:"assignedTo"`
	Status       string    `json:"status"` // "Active", "In Maintenance", "Retired"
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
