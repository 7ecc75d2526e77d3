package models

import "time"

// Vendor represents a service provider. Performance is computed from work
// order history, never stored on the record.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Category  string    `json:"category"` // "HVAC", "Electrical", "Plumbing", "Generator", "General"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
