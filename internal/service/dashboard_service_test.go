package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmsuite/facility-admin/internal/metrics"
	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/store"
)

func TestDashboardService_Summary(t *testing.T) {
	mem := store.NewMemoryStore()
	workOrders := NewWorkOrderService(mem)
	bills := NewBillService(mem)
	fuel := NewFuelService(mem)
	dashboard := NewDashboardService(mem)

	_, err := workOrders.Create(context.Background(), models.WorkOrder{
		Description: "AC service", WorkOrderType: models.WorkOrderTypePPM, DueDate: time.Now().AddDate(0, 0, 5),
	})
	require.NoError(t, err)
	wo, err := workOrders.Create(context.Background(), models.WorkOrder{
		Description: "Pump repair", WorkOrderType: models.WorkOrderTypeReactive, DueDate: time.Now().AddDate(0, 0, 5),
	})
	require.NoError(t, err)
	_, err = workOrders.Close(context.Background(), wo.ID, time.Now())
	require.NoError(t, err)

	_, err = bills.Create(context.Background(), models.UtilityElectricity, models.UtilityBill{
		BranchSite: "Accra Main", Month: "2026-08", BillAmount: 2000,
	})
	require.NoError(t, err)
	_, err = bills.Create(context.Background(), models.UtilityWater, models.UtilityBill{
		BranchSite: "Accra Main", Month: "2026-08", BillAmount: 500,
	})
	require.NoError(t, err)

	_, err = fuel.CreateLog(context.Background(), models.FuelLevelLog{
		BranchSite: "Accra Main", GeneratorID: "gen-1", RecordedFuelLevel: 400, MinimumRequiredLevel: 800,
	})
	require.NoError(t, err)

	summary, err := dashboard.Summary(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalWorkOrders)
	assert.Equal(t, 1, summary.OpenWorkOrders)
	assert.Equal(t, 1, summary.ClosedWorkOrders)
	assert.InDelta(t, 2500.0, summary.TotalBillAmount, 0.0001)
	assert.Equal(t, 2, summary.UnpaidBillCount)
	assert.Equal(t, 1, summary.FuelReorderCount)
	assert.Equal(t, 1, summary.ActiveGenerators)
}

func TestDashboardService_SummaryEmptyStore(t *testing.T) {
	dashboard := NewDashboardService(store.NewMemoryStore())

	summary, err := dashboard.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalWorkOrders)
	assert.Equal(t, 0.0, summary.PPMComplianceRate)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	mem := store.NewMemoryStore()
	workOrders := NewWorkOrderService(mem)
	dashboard := NewDashboardService(mem)

	_, err := workOrders.Create(context.Background(), models.WorkOrder{
		Description: "Recent", WorkOrderType: models.WorkOrderTypeReactive, EstimatedCost: 120,
	})
	require.NoError(t, err)

	count, cost, err := dashboard.RecentActivity(context.Background(), metrics.Window7Days, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 120.0, cost, 0.0001)
}
