package models

import "time"

// Utility identifies which utility a bill belongs to.
const (
	UtilityElectricity = "ECG"
	UtilityWater       = "Water"
	UtilityFuel        = "Fuel"
)

// BillStatus values. "Uploaded to Coupa" is reachable only through a manual
// override, never through the derived cascade.
const (
	BillReceived          = "Received"
	BillPendingApproval   = "Pending Approval"
	BillApproved          = "Approved"
	BillUploadedToCoupa   = "Uploaded to Coupa"
	BillPaid              = "Paid"
	BillReconciled        = "Reconciliation Complete"
	BillRemediationNeeded = "Remediation Required"
)

// ApprovalStatus values.
const (
	ApprovalPending     = "Pending"
	ApprovalApproved    = "Approved"
	ApprovalNotApproved = "Not Approved"
)

// PaymentStatus values.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// UtilityBill represents a monthly utility bill (electricity or water) for a
// branch site. BillStatus is denormalized: it is recomputed by the status
// cascade on every sub-status update and stored, because downstream readers
// consume the stored field directly.
type UtilityBill struct {
	ID              string    `json:"id"`
	Utility         string    `json:"utility"` // "ECG", "Water"
	Month           string    `json:"month"`   // "2026-01"
	BranchSite      string    `json:"branchSite"`
	MeterNumber     string    `json:"meterNumber"`
	BillAmount      float64   `json:"billAmount"`
	BillStatus      string    `json:"billStatus"`
	ApprovalStatus  string    `json:"approvalStatus"` // "Pending", "Approved", "Not Approved"
	PaymentStatus   string    `json:"paymentStatus"`  // "Unpaid", "Paid"
	ReceiptUploaded bool      `json:"receiptUploaded"`
	ReceivedDate    time.Time `json:"receivedDate"`
	ApprovedDate    time.Time `json:"approvedDate,omitempty"`
	PaidDate        time.Time `json:"paidDate,omitempty"`
	ReconciledDate  time.Time `json:"reconciledDate,omitempty"`
	RecordedBy      string    `json:"recordedBy"` // free text, not an authenticated identity
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
