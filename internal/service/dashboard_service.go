package service

import (
	"context"
	"time"

	"github.com/fmsuite/facility-admin/internal/metrics"
	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/repo"
	"github.com/fmsuite/facility-admin/internal/store"
)

// DashboardService produces the read-only summary view from the raw
// collections. Nothing is cached: the summary is recomputed from a fresh
// load on every call, matching the render-time recomputation of the source.
type DashboardService struct {
	workOrders *repo.Collection[models.WorkOrder]
	ecgBills   *repo.Collection[models.UtilityBill]
	waterBills *repo.Collection[models.UtilityBill]
	fuelLogs   *repo.Collection[models.FuelLevelLog]
}

// NewDashboardService creates a dashboard service over a store.
func NewDashboardService(s store.Store) *DashboardService {
	return &DashboardService{
		workOrders: repo.NewCollection[models.WorkOrder](s, store.KeyWorkOrders),
		ecgBills:   repo.NewCollection[models.UtilityBill](s, store.KeyECGBills),
		waterBills: repo.NewCollection[models.UtilityBill](s, store.KeyWaterBills),
		fuelLogs:   repo.NewCollection[models.FuelLevelLog](s, store.KeyFuelLogs),
	}
}

// Summary aggregates the dashboard scalars for the month containing now.
func (s *DashboardService) Summary(ctx context.Context, now time.Time) (*metrics.DashboardSummary, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	ecg, err := s.ecgBills.Load(ctx)
	if err != nil {
		return nil, err
	}
	water, err := s.waterBills.Load(ctx)
	if err != nil {
		return nil, err
	}
	fuelLogs, err := s.fuelLogs.Load(ctx)
	if err != nil {
		return nil, err
	}

	bills := append(append([]models.UtilityBill{}, ecg...), water...)
	summary := metrics.Summarize(workOrders, bills, fuelLogs, now)
	return &summary, nil
}

// RecentActivity counts work orders created inside a trailing window.
func (s *DashboardService) RecentActivity(ctx context.Context, w metrics.Window, now time.Time) (int, float64, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return 0, 0, err
	}
	count := metrics.CountRecentWorkOrders(workOrders, w, now)
	cost := metrics.SumRecentCosts(workOrders, w, now)
	return count, cost, nil
}
