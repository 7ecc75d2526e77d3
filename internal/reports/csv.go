package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fmsuite/facility-admin/internal/models"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// WriteWorkOrdersCSV writes work orders as CSV with a header row. Fields are
// quoted as needed by the encoder; no byte-exact contract exists beyond a
// human opening the file.
func WriteWorkOrdersCSV(w io.Writer, orders []models.WorkOrder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "assetId", "vendorId", "branchSite", "description", "status",
		"workOrderType", "createdDate", "dueDate", "completedDate", "slaStatus", "estimatedCost",
	}); err != nil {
		return err
	}
	for i := range orders {
		o := &orders[i]
		record := []string{
			o.ID, o.AssetID, o.VendorID, o.BranchSite, o.Description, o.Status,
			o.WorkOrderType, formatDate(o.CreatedDate), formatDate(o.DueDate),
			formatDate(o.CompletedDate), o.SLAStatus, fmt.Sprintf("%.2f", o.EstimatedCost),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBillsCSV writes utility bills as CSV with a header row.
func WriteBillsCSV(w io.Writer, bills []models.UtilityBill) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "utility", "month", "branchSite", "billAmount", "billStatus",
		"approvalStatus", "paymentStatus", "receiptUploaded",
		"approvedDate", "paidDate", "reconciledDate",
	}); err != nil {
		return err
	}
	for i := range bills {
		b := &bills[i]
		record := []string{
			b.ID, b.Utility, b.Month, b.BranchSite, fmt.Sprintf("%.2f", b.BillAmount),
			b.BillStatus, b.ApprovalStatus, b.PaymentStatus, fmt.Sprintf("%t", b.ReceiptUploaded),
			formatDate(b.ApprovedDate), formatDate(b.PaidDate), formatDate(b.ReconciledDate),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScorecardsCSV writes vendor scorecards as CSV, one row per vendor
// with the five KPI scores in rubric order.
func WriteScorecardsCSV(w io.Writer, cards []models.VendorPerformance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"vendorId", "vendorName", "ppmTimeliness", "reactiveSla",
		"completionRate", "stockAvailability", "monthlyReport", "totalScore", "overallRating",
	}); err != nil {
		return err
	}
	for i := range cards {
		c := &cards[i]
		record := []string{c.VendorID, c.VendorName}
		for _, k := range c.KPIs {
			record = append(record, fmt.Sprintf("%d", k.Score))
		}
		record = append(record, fmt.Sprintf("%d", c.TotalScore), c.OverallRating)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
