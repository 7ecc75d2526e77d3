package status

import (
	"time"

	"github.com/fmsuite/facility-admin/internal/models"
)

// BillUpdate carries the sub-status changes from one edit. Nil fields are
// left untouched.
type BillUpdate struct {
	ApprovalStatus  *string
	PaymentStatus   *string
	ReceiptUploaded *bool
}

// ApplyBillUpdate applies the sub-status changes and recomputes the derived
// BillStatus through the cascade. The returned record is a copy; the input
// is not mutated.
func ApplyBillUpdate(bill models.UtilityBill, update BillUpdate, now time.Time) models.UtilityBill {
	if update.ApprovalStatus != nil {
		bill.ApprovalStatus = *update.ApprovalStatus
	}
	if update.PaymentStatus != nil {
		bill.PaymentStatus = *update.PaymentStatus
	}
	if update.ReceiptUploaded != nil {
		bill.ReceiptUploaded = *update.ReceiptUploaded
	}
	return DeriveBillStatus(bill, now)
}

// DeriveBillStatus recomputes BillStatus from the sub-status fields and
// stamps the companion dates. Precedence, highest wins:
//
//	Not Approved            -> Remediation Required
//	Paid + receipt uploaded -> Reconciliation Complete
//	Paid                    -> Paid
//	Approved                -> Approved
//	otherwise               -> unchanged
//
// Date stamps are a one-way ratchet: each is set the first time its condition
// holds and is never cleared, even if the condition later regresses. Deriving
// is therefore idempotent on the status field but not pure on the dates.
func DeriveBillStatus(bill models.UtilityBill, now time.Time) models.UtilityBill {
	if bill.ApprovalStatus == models.ApprovalApproved && bill.ApprovedDate.IsZero() {
		bill.ApprovedDate = now
	}
	if bill.PaymentStatus == models.PaymentPaid && bill.PaidDate.IsZero() {
		bill.PaidDate = now
	}
	if bill.PaymentStatus == models.PaymentPaid && bill.ReceiptUploaded && bill.ReconciledDate.IsZero() {
		bill.ReconciledDate = now
	}

	switch {
	case bill.ApprovalStatus == models.ApprovalNotApproved:
		bill.BillStatus = models.BillRemediationNeeded
	case bill.PaymentStatus == models.PaymentPaid && bill.ReceiptUploaded:
		bill.BillStatus = models.BillReconciled
	case bill.PaymentStatus == models.PaymentPaid:
		bill.BillStatus = models.BillPaid
	case bill.ApprovalStatus == models.ApprovalApproved:
		bill.BillStatus = models.BillApproved
	}
	return bill
}

// OverrideBillStatus sets the display status directly, bypassing the
// cascade. "Uploaded to Coupa" is only reachable this way; the cascade never
// produces it.
func OverrideBillStatus(bill models.UtilityBill, billStatus string) models.UtilityBill {
	bill.BillStatus = billStatus
	return bill
}
