package scoring

import (
	"time"

	"github.com/fmsuite/facility-admin/internal/metrics"
	"github.com/fmsuite/facility-admin/internal/models"
)

// Rubric thresholds shared by the ratio-based KPIs.
const (
	excellentThreshold = 0.9
	goodThreshold      = 0.7
)

// RatingForScore maps a total score to its rating band. It is a step
// function: 0 is Not Rated, 1-8 Poor, 9-12 Good, 13-15 Excellent.
func RatingForScore(total int) string {
	switch {
	case total == 0:
		return models.RatingNotRated
	case total <= 8:
		return models.RatingPoor
	case total <= 12:
		return models.RatingGood
	default:
		return models.RatingExcellent
	}
}

// scoreRatio applies the shared 0.9/0.7 rubric.
func scoreRatio(ratio float64) int {
	switch {
	case ratio >= excellentThreshold:
		return 3
	case ratio >= goodThreshold:
		return 2
	default:
		return 1
	}
}

// ScoreVendor maps a vendor's work order history onto the five fixed KPIs
// and an overall rating. The result is deterministic for a given snapshot,
// so callers recompute it per read instead of caching it.
func ScoreVendor(vendor models.Vendor, workOrders []models.WorkOrder, now time.Time) models.VendorPerformance {
	var vendorOrders []models.WorkOrder
	for i := range workOrders {
		if workOrders[i].VendorID == vendor.ID {
			vendorOrders = append(vendorOrders, workOrders[i])
		}
	}

	kpis := []models.VendorKPI{
		{ID: models.KPIPPMTimeliness, Label: "PPM timeliness", Score: ppmTimelinessScore(vendorOrders)},
		{ID: models.KPIReactiveSLA, Label: "Reactive SLA", Score: reactiveSLAScore(vendorOrders)},
		{ID: models.KPICompletionRate, Label: "Completion rate", Score: completionRateScore(vendorOrders)},
		{ID: models.KPIStockAvail, Label: "Stock availability", Score: stockAvailabilityScore(vendorOrders)},
		{ID: models.KPIMonthlyReport, Label: "Monthly report", Score: monthlyReportScore(vendorOrders, now)},
	}

	total := 0
	for _, k := range kpis {
		total += k.Score
	}

	return models.VendorPerformance{
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		KPIs:          kpis,
		TotalScore:    total,
		OverallRating: RatingForScore(total),
	}
}

// ScoreAllVendors computes a scorecard for every vendor against the same
// work order snapshot.
func ScoreAllVendors(vendors []models.Vendor, workOrders []models.WorkOrder, now time.Time) []models.VendorPerformance {
	results := make([]models.VendorPerformance, 0, len(vendors))
	for i := range vendors {
		results = append(results, ScoreVendor(vendors[i], workOrders, now))
	}
	return results
}

// ppmTimelinessScore scores on-time delivery of planned maintenance. A
// vendor with no PPM orders scores 0.
func ppmTimelinessScore(orders []models.WorkOrder) int {
	total, met := 0, 0
	for i := range orders {
		if !orders[i].IsPPM() {
			continue
		}
		total++
		if orders[i].SLAStatus == models.SLAMet {
			met++
		}
	}
	if total == 0 {
		return 0
	}
	return scoreRatio(float64(met) / float64(total))
}

// reactiveSLAScore is the same rubric over non-PPM orders.
func reactiveSLAScore(orders []models.WorkOrder) int {
	total, met := 0, 0
	for i := range orders {
		if orders[i].IsPPM() {
			continue
		}
		total++
		if orders[i].SLAStatus == models.SLAMet {
			met++
		}
	}
	if total == 0 {
		return 0
	}
	return scoreRatio(float64(met) / float64(total))
}

// completionRateScore scores closed orders against the full history. Only
// the empty-history case short-circuits to 0.
func completionRateScore(orders []models.WorkOrder) int {
	if len(orders) == 0 {
		return 0
	}
	closed := 0
	for i := range orders {
		if orders[i].IsClosed() {
			closed++
		}
	}
	return scoreRatio(float64(closed) / float64(len(orders)))
}

// stockAvailabilityScore is a binary proxy carried over from the source
// rubric: 2 when any history exists, otherwise 0. It never reaches 3.
func stockAvailabilityScore(orders []models.WorkOrder) int {
	if len(orders) > 0 {
		return 2
	}
	return 0
}

// monthlyReportScore rewards activity in the current calendar month.
func monthlyReportScore(orders []models.WorkOrder, now time.Time) int {
	if len(orders) == 0 {
		return 0
	}
	for i := range orders {
		if metrics.InCurrentMonth(orders[i].CreatedDate, now) {
			return 3
		}
	}
	return 2
}
