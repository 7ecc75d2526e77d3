package status

import (
	"time"

	"github.com/fmsuite/facility-admin/internal/models"
)

// DeriveSLAStatus computes the binary SLA flag for a work order. Closed
// orders compare their completion date against the due date; open orders
// breach once the due date has passed. Orders without a due date are
// treated as Met.
func DeriveSLAStatus(wo models.WorkOrder, now time.Time) string {
	if wo.DueDate.IsZero() {
		return models.SLAMet
	}
	if wo.IsClosed() {
		if !wo.CompletedDate.IsZero() && wo.CompletedDate.After(wo.DueDate) {
			return models.SLABreached
		}
		return models.SLAMet
	}
	if now.After(wo.DueDate) {
		return models.SLABreached
	}
	return models.SLAMet
}
