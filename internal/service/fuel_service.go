package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/repo"
	"github.com/fmsuite/facility-admin/internal/store"
)

// FuelService manages fuel level logs and reorder requests. The reorder
// flag is computed once when the log is written; a later edit of the
// minimum level does not revisit old logs.
type FuelService struct {
	logs     *repo.Collection[models.FuelLevelLog]
	reorders *repo.Collection[models.ReorderRequest]
}

// NewFuelService creates a fuel service over a store.
func NewFuelService(s store.Store) *FuelService {
	return &FuelService{
		logs:     repo.NewCollection[models.FuelLevelLog](s, store.KeyFuelLogs),
		reorders: repo.NewCollection[models.ReorderRequest](s, store.KeyReorderRequests),
	}
}

// ListLogs returns all fuel level logs.
func (s *FuelService) ListLogs(ctx context.Context) ([]models.FuelLevelLog, error) {
	return s.logs.Load(ctx)
}

// CreateLog validates and appends a new fuel level log, fixing the reorder
// flag at write time.
func (s *FuelService) CreateLog(ctx context.Context, entry models.FuelLevelLog) (*models.FuelLevelLog, error) {
	if err := required("branchSite", entry.BranchSite); err != nil {
		return nil, err
	}
	if err := required("generatorId", entry.GeneratorID); err != nil {
		return nil, err
	}
	if entry.RecordedFuelLevel < 0 {
		return nil, &ValidationError{Field: "recordedFuelLevel", Message: "must not be negative"}
	}
	if entry.MinimumRequiredLevel <= 0 {
		return nil, &ValidationError{Field: "minimumRequiredLevel", Message: "must be greater than zero"}
	}

	logs, err := s.logs.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.ID = uuid.NewString()
	entry.ReorderRequired = entry.ComputeReorderRequired()
	if entry.RecordedDate.IsZero() {
		entry.RecordedDate = now
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	logs = append(logs, entry)
	if err := s.logs.Save(ctx, logs); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"log_id":           entry.ID,
		"generator_id":     entry.GeneratorID,
		"fuel_level":       entry.RecordedFuelLevel,
		"reorder_required": entry.ReorderRequired,
	}).Info("Recorded fuel level")
	return &entry, nil
}

// DeleteLog removes a fuel level log by ID.
func (s *FuelService) DeleteLog(ctx context.Context, id string) error {
	logs, err := s.logs.Load(ctx)
	if err != nil {
		return err
	}

	filtered := logs[:0]
	found := false
	for i := range logs {
		if logs[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, logs[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.logs.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"log_id": id}).Info("Deleted fuel level log")
	return nil
}

// ListReorders returns all reorder requests.
func (s *FuelService) ListReorders(ctx context.Context) ([]models.ReorderRequest, error) {
	return s.reorders.Load(ctx)
}

// CreateReorder validates and appends a new fuel reorder request.
func (s *FuelService) CreateReorder(ctx context.Context, req models.ReorderRequest) (*models.ReorderRequest, error) {
	if err := required("branchSite", req.BranchSite); err != nil {
		return nil, err
	}
	if err := required("generatorId", req.GeneratorID); err != nil {
		return nil, err
	}
	if req.RequestedLiters <= 0 {
		return nil, &ValidationError{Field: "requestedLiters", Message: "must be greater than zero"}
	}

	reorders, err := s.reorders.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.ID = uuid.NewString()
	if req.Status == "" {
		req.Status = models.ReorderPending
	}
	if req.RequestedDate.IsZero() {
		req.RequestedDate = now
	}
	req.CreatedAt = now
	req.UpdatedAt = now

	reorders = append(reorders, req)
	if err := s.reorders.Save(ctx, reorders); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"reorder_id":   req.ID,
		"generator_id": req.GeneratorID,
		"liters":       req.RequestedLiters,
	}).Info("Raised fuel reorder request")
	return &req, nil
}

// UpdateReorderStatus moves a reorder request through its lifecycle.
func (s *FuelService) UpdateReorderStatus(ctx context.Context, id, reorderStatus string) (*models.ReorderRequest, error) {
	reorders, err := s.reorders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reorders {
		if reorders[i].ID == id {
			reorders[i].Status = reorderStatus
			reorders[i].UpdatedAt = time.Now()
			if err := s.reorders.Save(ctx, reorders); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"reorder_id": id, "status": reorderStatus}).Info("Updated reorder request")
			return &reorders[i], nil
		}
	}
	return nil, ErrNotFound
}
