package metrics

import (
	"fmt"
	"time"

	"github.com/fmsuite/facility-admin/internal/models"
)

// Window is a trailing time window specifier.
type Window string

const (
	Window7Days  Window = "7days"
	Window30Days Window = "30days"
)

// ParseWindow validates a window specifier.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window7Days, Window30Days:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown window %q", s)
	}
}

// Days returns the window length in days.
func (w Window) Days() int {
	if w == Window7Days {
		return 7
	}
	return 30
}

// Cutoff returns the earliest instant inside the window.
func (w Window) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -w.Days())
}

// Contains reports whether t falls inside the window ending at now. A zero
// time is never inside any window, which silently excludes records with a
// missing date field.
func (w Window) Contains(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(w.Cutoff(now)) && !t.After(now)
}

// LastMonth returns the calendar month before the one containing now,
// wrapping January back to December of the previous year.
func LastMonth(now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// InMonth reports whether t falls in the given calendar month. Zero times
// are excluded.
func InMonth(t time.Time, year int, month time.Month) bool {
	if t.IsZero() {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// InCurrentMonth reports whether t falls in the calendar month containing now.
func InCurrentMonth(t, now time.Time) bool {
	return InMonth(t, now.Year(), now.Month())
}

// Ratio divides numerator by denominator, returning 0 for an empty
// denominator rather than NaN.
func Ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// PercentChange returns the month-over-month change in percent. When the
// previous value is not positive the change is reported as 0 instead of
// dividing by zero.
func PercentChange(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// DashboardSummary is the flat bundle of scalars the dashboard renders.
type DashboardSummary struct {
	TotalWorkOrders   int     `json:"totalWorkOrders"`
	OpenWorkOrders    int     `json:"openWorkOrders"`
	ClosedWorkOrders  int     `json:"closedWorkOrders"`
	SLABreachedCount  int     `json:"slaBreachedCount"`
	PPMComplianceRate float64 `json:"ppmComplianceRate"` // Met PPM orders / all PPM orders

	WorkOrdersThisMonth int     `json:"workOrdersThisMonth"`
	WorkOrdersLastMonth int     `json:"workOrdersLastMonth"`
	WorkOrderChangePct  float64 `json:"workOrderChangePct"`

	CostThisMonth float64 `json:"costThisMonth"`
	CostLastMonth float64 `json:"costLastMonth"`
	CostChangePct float64 `json:"costChangePct"`

	TotalBillAmount  float64 `json:"totalBillAmount"`
	UnpaidBillCount  int     `json:"unpaidBillCount"`
	RemediationCount int     `json:"remediationCount"`
	FuelReorderCount int     `json:"fuelReorderCount"`
	ActiveGenerators int     `json:"activeGenerators"`
}

// Summarize scans the raw collections and produces the dashboard scalars for
// the calendar month containing now. It is a pure function of its inputs.
func Summarize(workOrders []models.WorkOrder, bills []models.UtilityBill, fuelLogs []models.FuelLevelLog, now time.Time) DashboardSummary {
	var s DashboardSummary

	lastYear, lastMonth := LastMonth(now)

	var ppmTotal, ppmMet int
	for i := range workOrders {
		wo := &workOrders[i]
		s.TotalWorkOrders++
		switch wo.Status {
		case models.WorkOrderOpen:
			s.OpenWorkOrders++
		case models.WorkOrderClosed:
			s.ClosedWorkOrders++
		}
		if wo.SLAStatus == models.SLABreached {
			s.SLABreachedCount++
		}
		if wo.IsPPM() {
			ppmTotal++
			if wo.SLAStatus == models.SLAMet {
				ppmMet++
			}
		}
		if InCurrentMonth(wo.CreatedDate, now) {
			s.WorkOrdersThisMonth++
			s.CostThisMonth += wo.EstimatedCost
		}
		if InMonth(wo.CreatedDate, lastYear, lastMonth) {
			s.WorkOrdersLastMonth++
			s.CostLastMonth += wo.EstimatedCost
		}
	}
	s.PPMComplianceRate = Ratio(ppmMet, ppmTotal)
	s.WorkOrderChangePct = PercentChange(float64(s.WorkOrdersThisMonth), float64(s.WorkOrdersLastMonth))
	s.CostChangePct = PercentChange(s.CostThisMonth, s.CostLastMonth)

	for i := range bills {
		b := &bills[i]
		s.TotalBillAmount += b.BillAmount
		if b.PaymentStatus != models.PaymentPaid {
			s.UnpaidBillCount++
		}
		if b.BillStatus == models.BillRemediationNeeded {
			s.RemediationCount++
		}
	}

	generators := make(map[string]bool)
	for i := range fuelLogs {
		f := &fuelLogs[i]
		if f.ReorderRequired {
			s.FuelReorderCount++
		}
		if f.GeneratorID != "" {
			generators[f.GeneratorID] = true
		}
	}
	s.ActiveGenerators = len(generators)

	return s
}

// CountRecentWorkOrders counts work orders created inside a trailing window.
func CountRecentWorkOrders(workOrders []models.WorkOrder, w Window, now time.Time) int {
	count := 0
	for i := range workOrders {
		if w.Contains(workOrders[i].CreatedDate, now) {
			count++
		}
	}
	return count
}

// SumRecentCosts sums estimated costs of work orders created inside a
// trailing window.
func SumRecentCosts(workOrders []models.WorkOrder, w Window, now time.Time) float64 {
	total := 0.0
	for i := range workOrders {
		if w.Contains(workOrders[i].CreatedDate, now) {
			total += workOrders[i].EstimatedCost
		}
	}
	return total
}
