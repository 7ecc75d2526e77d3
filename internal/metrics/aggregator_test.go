package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fmsuite/facility-admin/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestLastMonth(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantYear  int
		wantMonth time.Month
	}{
		{"mid year", date(2026, time.July, 15), 2026, time.June},
		{"january wraps to december", date(2026, time.January, 3), 2025, time.December},
		{"february", date(2026, time.February, 28), 2026, time.January},
		{"december", date(2025, time.December, 31), 2025, time.November},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := LastMonth(tt.now)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("7days")
	assert.NoError(t, err)
	assert.Equal(t, Window7Days, w)

	w, err = ParseWindow("30days")
	assert.NoError(t, err)
	assert.Equal(t, Window30Days, w)

	_, err = ParseWindow("90days")
	assert.Error(t, err)
}

func TestWindow_Contains(t *testing.T) {
	now := date(2026, time.August, 30)

	assert.True(t, Window7Days.Contains(date(2026, time.August, 27), now))
	assert.False(t, Window7Days.Contains(date(2026, time.August, 10), now))
	assert.True(t, Window30Days.Contains(date(2026, time.August, 10), now))
	assert.False(t, Window30Days.Contains(date(2026, time.September, 2), now))

	// Missing dates are excluded, not compared.
	assert.False(t, Window30Days.Contains(time.Time{}, now))
}

func TestRatio_GuardsZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.Equal(t, 0.5, Ratio(1, 2))
}

func TestPercentChange_GuardsZeroPrevious(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(10, 0))
	assert.Equal(t, 0.0, PercentChange(10, -5))
	assert.InDelta(t, 25.0, PercentChange(125, 100), 0.0001)
	assert.InDelta(t, -50.0, PercentChange(50, 100), 0.0001)
}

func TestSummarize(t *testing.T) {
	now := date(2026, time.August, 30)

	workOrders := []models.WorkOrder{
		{ID: "wo-1", Status: models.WorkOrderOpen, WorkOrderType: models.WorkOrderTypePPM,
			SLAStatus: models.SLAMet, CreatedDate: date(2026, time.August, 5), EstimatedCost: 200},
		{ID: "wo-2", Status: models.WorkOrderClosed, WorkOrderType: models.WorkOrderTypePPM,
			SLAStatus: models.SLABreached, CreatedDate: date(2026, time.July, 20), EstimatedCost: 150},
		{ID: "wo-3", Status: models.WorkOrderClosed, WorkOrderType: models.WorkOrderTypeReactive,
			SLAStatus: models.SLAMet, CreatedDate: date(2026, time.August, 12), EstimatedCost: 300},
		{ID: "wo-4", Status: models.WorkOrderRejected, WorkOrderType: models.WorkOrderTypeReactive,
			SLAStatus: models.SLABreached, CreatedDate: date(2026, time.June, 1), EstimatedCost: 75},
	}
	bills := []models.UtilityBill{
		{ID: "b-1", BillAmount: 1000, PaymentStatus: models.PaymentPaid, BillStatus: models.BillPaid},
		{ID: "b-2", BillAmount: 500, PaymentStatus: models.PaymentUnpaid, BillStatus: models.BillRemediationNeeded},
	}
	fuelLogs := []models.FuelLevelLog{
		{ID: "f-1", GeneratorID: "gen-1", ReorderRequired: true},
		{ID: "f-2", GeneratorID: "gen-1", ReorderRequired: false},
		{ID: "f-3", GeneratorID: "gen-2", ReorderRequired: false},
	}

	s := Summarize(workOrders, bills, fuelLogs, now)

	assert.Equal(t, 4, s.TotalWorkOrders)
	assert.Equal(t, 1, s.OpenWorkOrders)
	assert.Equal(t, 2, s.ClosedWorkOrders)
	assert.Equal(t, 2, s.SLABreachedCount)
	assert.InDelta(t, 0.5, s.PPMComplianceRate, 0.0001)

	assert.Equal(t, 2, s.WorkOrdersThisMonth)
	assert.Equal(t, 1, s.WorkOrdersLastMonth)
	assert.InDelta(t, 100.0, s.WorkOrderChangePct, 0.0001)

	assert.InDelta(t, 500.0, s.CostThisMonth, 0.0001)
	assert.InDelta(t, 150.0, s.CostLastMonth, 0.0001)

	assert.InDelta(t, 1500.0, s.TotalBillAmount, 0.0001)
	assert.Equal(t, 1, s.UnpaidBillCount)
	assert.Equal(t, 1, s.RemediationCount)

	assert.Equal(t, 1, s.FuelReorderCount)
	assert.Equal(t, 2, s.ActiveGenerators)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, nil, date(2026, time.August, 30))
	assert.Equal(t, 0, s.TotalWorkOrders)
	assert.Equal(t, 0.0, s.PPMComplianceRate)
	assert.Equal(t, 0.0, s.WorkOrderChangePct)
}

func TestSummarize_JanuaryLooksAtPreviousDecember(t *testing.T) {
	now := date(2026, time.January, 10)
	workOrders := []models.WorkOrder{
		{ID: "wo-1", CreatedDate: date(2025, time.December, 20), EstimatedCost: 80},
		{ID: "wo-2", CreatedDate: date(2026, time.January, 5), EstimatedCost: 40},
	}

	s := Summarize(workOrders, nil, nil, now)
	assert.Equal(t, 1, s.WorkOrdersThisMonth)
	assert.Equal(t, 1, s.WorkOrdersLastMonth)
}

func TestCountRecentWorkOrders(t *testing.T) {
	now := date(2026, time.August, 30)
	workOrders := []models.WorkOrder{
		{CreatedDate: date(2026, time.August, 28)},
		{CreatedDate: date(2026, time.August, 15)},
		{CreatedDate: date(2026, time.May, 1)},
		{}, // missing date, excluded
	}

	assert.Equal(t, 1, CountRecentWorkOrders(workOrders, Window7Days, now))
	assert.Equal(t, 2, CountRecentWorkOrders(workOrders, Window30Days, now))
}

func TestSumRecentCosts(t *testing.T) {
	now := date(2026, time.August, 30)
	workOrders := []models.WorkOrder{
		{CreatedDate: date(2026, time.August, 28), EstimatedCost: 100},
		{CreatedDate: date(2026, time.August, 2), EstimatedCost: 50},
		{CreatedDate: date(2026, time.January, 2), EstimatedCost: 999},
	}

	assert.InDelta(t, 100.0, SumRecentCosts(workOrders, Window7Days, now), 0.0001)
	assert.InDelta(t, 150.0, SumRecentCosts(workOrders, Window30Days, now), 0.0001)
}
