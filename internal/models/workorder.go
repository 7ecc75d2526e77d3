package models

import "time"

// WorkOrder status values.
const (
	WorkOrderOpen     = "Open"
	WorkOrderClosed   = "Closed"
	WorkOrderRejected = "Rejected"
)

// WorkOrder type values. PPM is planned preventive maintenance; everything
// else is treated as reactive.
const (
	WorkOrderTypePPM      = "PPM"
	WorkOrderTypeReactive = "Reactive"
)

// SLA status values.
const (
	SLAMet      = "Met"
	SLABreached = "Breached"
)

// WorkOrder represents a maintenance work order. It is the central fact
// record: vendor scoring and dashboard metrics are derived from it.
type WorkOrder struct {
	ID            string    `json:"id"`
	AssetID       string    `json:"assetId"`
	VendorID      string    `json:"vendorId"` // loose match against Vendor.ID, no FK enforcement
	BranchSite    string    `json:"branchSite"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`        // "Open", "Closed", "Rejected"
	WorkOrderType string    `json:"workOrderType"` // "PPM", "Reactive", ...
	CreatedDate   time.Time `json:"createdDate"`
	DueDate       time.Time `json:"dueDate"`
	CompletedDate time.Time `json:"completedDate,omitempty"`
	SLAStatus     string    `json:"slaStatus"` // "Met", "Breached"
	EstimatedCost float64   `json:"estimatedCost"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsPPM reports whether the order is a planned preventive maintenance order.
func (w *WorkOrder) IsPPM() bool {
	return w.WorkOrderType == WorkOrderTypePPM
}

// IsClosed reports whether the order has been completed.
func (w *WorkOrder) IsClosed() bool {
	return w.Status == WorkOrderClosed
}
