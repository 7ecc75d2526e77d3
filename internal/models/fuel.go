package models

import "time"

// ReorderRequest status values.
const (
	ReorderPending   = "Pending"
	ReorderOrdered   = "Ordered"
	ReorderDelivered = "Delivered"
	ReorderCancelled = "Cancelled"
)

// FuelLevelLog represents a generator fuel level reading at a branch site.
// ReorderRequired is fixed at log time and never re-derived afterwards, even
// if the minimum level is edited later.
type FuelLevelLog struct {
	ID                   string    `json:"id"`
	BranchSite           string    `json:"branchSite"`
	GeneratorID          string    `json:"generatorId"`
	RecordedFuelLevel    float64   `json:"recordedFuelLevel"`    // in liters
	MinimumRequiredLevel float64   `json:"minimumRequiredLevel"` // in liters
	ReorderRequired      bool      `json:"reorderRequired"`
	RecordedBy           string    `json:"recordedBy"` // free text
	RecordedDate         time.Time `json:"recordedDate"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ComputeReorderRequired evaluates the reorder rule against the logged
// levels. Callers stamp the result onto ReorderRequired at write time.
func (f *FuelLevelLog) ComputeReorderRequired() bool {
	return f.RecordedFuelLevel < f.MinimumRequiredLevel
}

// ReorderRequest represents a fuel purchase request raised when a logged
// level falls below the configured minimum.
type ReorderRequest struct {
	ID              string    `json:"id"`
	BranchSite      string    `json:"branchSite"`
	GeneratorID     string    `json:"generatorId"`
	RequestedLiters float64   `json:"requestedLiters"`
	Status          string    `json:"status"` // "Pending", "Ordered", "Delivered", "Cancelled"
	RequestedBy     string    `json:"requestedBy"`
	RequestedDate   time.Time `json:"requestedDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
