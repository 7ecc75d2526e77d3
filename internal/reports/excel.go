package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fmsuite/facility-admin/internal/metrics"
	"github.com/fmsuite/facility-admin/internal/models"
)

// BuildSummaryWorkbook renders the dashboard summary and vendor scorecards
// into a two-sheet workbook. The caller saves or streams the file.
func BuildSummaryWorkbook(summary metrics.DashboardSummary, cards []models.VendorPerformance, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, summary, now); err != nil {
		return nil, err
	}
	if err := writeScorecardSheet(f, cards); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, summary metrics.DashboardSummary, now time.Time) error {
	sheetName := "Summary"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Facility Dashboard Summary")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04:05")))

	rows := []struct {
		label string
		value interface{}
	}{
		{"Total work orders", summary.TotalWorkOrders},
		{"Open work orders", summary.OpenWorkOrders},
		{"Closed work orders", summary.ClosedWorkOrders},
		{"SLA breached", summary.SLABreachedCount},
		{"PPM compliance rate", summary.PPMComplianceRate},
		{"Work orders this month", summary.WorkOrdersThisMonth},
		{"Work orders last month", summary.WorkOrdersLastMonth},
		{"Work order change %", summary.WorkOrderChangePct},
		{"Cost this month", summary.CostThisMonth},
		{"Cost last month", summary.CostLastMonth},
		{"Total bill amount", summary.TotalBillAmount},
		{"Unpaid bills", summary.UnpaidBillCount},
		{"Bills needing remediation", summary.RemediationCount},
		{"Fuel reorders required", summary.FuelReorderCount},
		{"Active generators", summary.ActiveGenerators},
	}
	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+4), row.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+4), row.value)
	}
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 16)
	return nil
}

func writeScorecardSheet(f *excelize.File, cards []models.VendorPerformance) error {
	sheetName := "Vendor Scorecards"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	headers := []string{"Vendor", "PPM timeliness", "Reactive SLA", "Completion rate",
		"Stock availability", "Monthly report", "Total", "Rating"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 28)

	for rowIdx := range cards {
		c := &cards[rowIdx]
		values := []interface{}{c.VendorName}
		for _, k := range c.KPIs {
			values = append(values, k.Score)
		}
		values = append(values, c.TotalScore, c.OverallRating)
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	return nil
}
