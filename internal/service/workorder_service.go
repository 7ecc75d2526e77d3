package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/repo"
	"github.com/fmsuite/facility-admin/internal/status"
	"github.com/fmsuite/facility-admin/internal/store"
)

// WorkOrderService manages the work order collection. SLA status is derived
// and stored at every write so that readers of the stored field see the same
// value the writer computed.
type WorkOrderService struct {
	workOrders *repo.Collection[models.WorkOrder]
}

// NewWorkOrderService creates a work order service over a store.
func NewWorkOrderService(s store.Store) *WorkOrderService {
	return &WorkOrderService{workOrders: repo.NewCollection[models.WorkOrder](s, store.KeyWorkOrders)}
}

// List returns all work orders.
func (s *WorkOrderService) List(ctx context.Context) ([]models.WorkOrder, error) {
	return s.workOrders.Load(ctx)
}

// ListByVendor returns the work orders associated with a vendor.
func (s *WorkOrderService) ListByVendor(ctx context.Context, vendorID string) ([]models.WorkOrder, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.WorkOrder
	for i := range workOrders {
		if workOrders[i].VendorID == vendorID {
			result = append(result, workOrders[i])
		}
	}
	return result, nil
}

// Get returns one work order by ID.
func (s *WorkOrderService) Get(ctx context.Context, id string) (*models.WorkOrder, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workOrders {
		if workOrders[i].ID == id {
			return &workOrders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and appends a new work order.
func (s *WorkOrderService) Create(ctx context.Context, wo models.WorkOrder) (*models.WorkOrder, error) {
	if err := required("description", wo.Description); err != nil {
		return nil, err
	}
	if err := required("workOrderType", wo.WorkOrderType); err != nil {
		return nil, err
	}

	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	wo.ID = uuid.NewString()
	if wo.Status == "" {
		wo.Status = models.WorkOrderOpen
	}
	if wo.CreatedDate.IsZero() {
		wo.CreatedDate = now
	}
	wo.SLAStatus = status.DeriveSLAStatus(wo, now)
	wo.CreatedAt = now
	wo.UpdatedAt = now

	workOrders = append(workOrders, wo)
	if err := s.workOrders.Save(ctx, workOrders); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"work_order_id": wo.ID,
		"type":          wo.WorkOrderType,
		"vendor_id":     wo.VendorID,
	}).Info("Created work order")
	return &wo, nil
}

// Update replaces a work order by ID and re-derives its SLA status.
func (s *WorkOrderService) Update(ctx context.Context, id string, wo models.WorkOrder) (*models.WorkOrder, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workOrders {
		if workOrders[i].ID == id {
			now := time.Now()
			wo.ID = id
			wo.CreatedAt = workOrders[i].CreatedAt
			wo.SLAStatus = status.DeriveSLAStatus(wo, now)
			wo.UpdatedAt = now
			workOrders[i] = wo
			if err := s.workOrders.Save(ctx, workOrders); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"work_order_id": id, "status": wo.Status}).Info("Updated work order")
			return &workOrders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Close marks a work order completed at the given time and re-derives its
// SLA status from the completion date.
func (s *WorkOrderService) Close(ctx context.Context, id string, completed time.Time) (*models.WorkOrder, error) {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workOrders {
		if workOrders[i].ID == id {
			now := time.Now()
			workOrders[i].Status = models.WorkOrderClosed
			workOrders[i].CompletedDate = completed
			workOrders[i].SLAStatus = status.DeriveSLAStatus(workOrders[i], now)
			workOrders[i].UpdatedAt = now
			if err := s.workOrders.Save(ctx, workOrders); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{
				"work_order_id": id,
				"sla_status":    workOrders[i].SLAStatus,
			}).Info("Closed work order")
			return &workOrders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a work order by ID.
func (s *WorkOrderService) Delete(ctx context.Context, id string) error {
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return err
	}

	filtered := workOrders[:0]
	found := false
	for i := range workOrders {
		if workOrders[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, workOrders[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.workOrders.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"work_order_id": id}).Info("Deleted work order")
	return nil
}
