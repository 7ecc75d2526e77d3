package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/repo"
	"github.com/fmsuite/facility-admin/internal/scoring"
	"github.com/fmsuite/facility-admin/internal/store"
)

// VendorService manages the vendor collection and computes vendor
// performance from work order history.
type VendorService struct {
	vendors    *repo.Collection[models.Vendor]
	workOrders *repo.Collection[models.WorkOrder]
}

// NewVendorService creates a vendor service over a store.
func NewVendorService(s store.Store) *VendorService {
	return &VendorService{
		vendors:    repo.NewCollection[models.Vendor](s, store.KeyVendors),
		workOrders: repo.NewCollection[models.WorkOrder](s, store.KeyWorkOrders),
	}
}

// List returns all vendors.
func (s *VendorService) List(ctx context.Context) ([]models.Vendor, error) {
	return s.vendors.Load(ctx)
}

// Get returns one vendor by ID.
func (s *VendorService) Get(ctx context.Context, id string) (*models.Vendor, error) {
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if vendors[i].ID == id {
			return &vendors[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and appends a new vendor.
func (s *VendorService) Create(ctx context.Context, vendor models.Vendor) (*models.Vendor, error) {
	if err := required("name", vendor.Name); err != nil {
		return nil, err
	}

	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, err
	}

	vendor.ID = uuid.NewString()
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt

	vendors = append(vendors, vendor)
	if err := s.vendors.Save(ctx, vendors); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"vendor_id": vendor.ID, "name": vendor.Name}).Info("Created vendor")
	return &vendor, nil
}

// Update replaces a vendor by ID.
func (s *VendorService) Update(ctx context.Context, id string, vendor models.Vendor) (*models.Vendor, error) {
	if err := required("name", vendor.Name); err != nil {
		return nil, err
	}

	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if vendors[i].ID == id {
			vendor.ID = id
			vendor.CreatedAt = vendors[i].CreatedAt
			vendor.UpdatedAt = time.Now()
			vendors[i] = vendor
			if err := s.vendors.Save(ctx, vendors); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"vendor_id": id}).Info("Updated vendor")
			return &vendors[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a vendor by ID. Work orders referencing the vendor keep
// their vendorId; references are loose by design.
func (s *VendorService) Delete(ctx context.Context, id string) error {
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return err
	}

	filtered := vendors[:0]
	found := false
	for i := range vendors {
		if vendors[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, vendors[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.vendors.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"vendor_id": id}).Info("Deleted vendor")
	return nil
}

// Performance recomputes the KPI scorecard for one vendor from the current
// work order snapshot.
func (s *VendorService) Performance(ctx context.Context, id string) (*models.VendorPerformance, error) {
	vendor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	perf := scoring.ScoreVendor(*vendor, workOrders, time.Now())
	return &perf, nil
}

// Scorecards recomputes KPI scorecards for every vendor.
func (s *VendorService) Scorecards(ctx context.Context) ([]models.VendorPerformance, error) {
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, err
	}
	workOrders, err := s.workOrders.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.ScoreAllVendors(vendors, workOrders, time.Now()), nil
}
