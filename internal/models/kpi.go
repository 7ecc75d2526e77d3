package models

// KPI identifiers for the five fixed vendor scoring dimensions.
const (
	KPIPPMTimeliness   = "ppm_timeliness"
	KPIReactiveSLA     = "reactive_sla"
	KPICompletionRate  = "completion_rate"
	KPIStockAvail      = "stock_availability"
	KPIMonthlyReport   = "monthly_report"
)

// Overall rating bands.
const (
	RatingNotRated  = "Not Rated"
	RatingPoor      = "Poor"
	RatingGood      = "Good"
	RatingExcellent = "Excellent"
)

// VendorKPI is a single scored dimension, 0-3.
type VendorKPI struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// VendorPerformance is a pure view model recomputed from work order history
// on every read. It is never persisted.
type VendorPerformance struct {
	VendorID      string      `json:"vendorId"`
	VendorName    string      `json:"vendorName"`
	KPIs          []VendorKPI `json:"kpis"`
	TotalScore    int         `json:"totalScore"`
	OverallRating string      `json:"overallRating"`
}
