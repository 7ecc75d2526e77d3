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

// BillService manages the electricity and water bill collections. Each
// utility persists under its own store key; the derived BillStatus is
// recomputed through the cascade on every sub-status change and stored.
type BillService struct {
	ecg   *repo.Collection[models.UtilityBill]
	water *repo.Collection[models.UtilityBill]
}

// NewBillService creates a bill service over a store.
func NewBillService(s store.Store) *BillService {
	return &BillService{
		ecg:   repo.NewCollection[models.UtilityBill](s, store.KeyECGBills),
		water: repo.NewCollection[models.UtilityBill](s, store.KeyWaterBills),
	}
}

func (s *BillService) collectionFor(utility string) (*repo.Collection[models.UtilityBill], error) {
	switch utility {
	case models.UtilityElectricity:
		return s.ecg, nil
	case models.UtilityWater:
		return s.water, nil
	default:
		return nil, &ValidationError{Field: "utility", Message: "must be ECG or Water"}
	}
}

// List returns all bills for a utility.
func (s *BillService) List(ctx context.Context, utility string) ([]models.UtilityBill, error) {
	col, err := s.collectionFor(utility)
	if err != nil {
		return nil, err
	}
	return col.Load(ctx)
}

// Get returns one bill by ID.
func (s *BillService) Get(ctx context.Context, utility, id string) (*models.UtilityBill, error) {
	col, err := s.collectionFor(utility)
	if err != nil {
		return nil, err
	}
	bills, err := col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			return &bills[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and appends a new bill. New bills start as "Received"
// with pending approval unless the caller set something else.
func (s *BillService) Create(ctx context.Context, utility string, bill models.UtilityBill) (*models.UtilityBill, error) {
	col, err := s.collectionFor(utility)
	if err != nil {
		return nil, err
	}
	if err := required("branchSite", bill.BranchSite); err != nil {
		return nil, err
	}
	if err := required("month", bill.Month); err != nil {
		return nil, err
	}
	if bill.BillAmount <= 0 {
		return nil, &ValidationError{Field: "billAmount", Message: "must be greater than zero"}
	}

	bills, err := col.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bill.ID = uuid.NewString()
	bill.Utility = utility
	if bill.BillStatus == "" {
		bill.BillStatus = models.BillReceived
	}
	if bill.ApprovalStatus == "" {
		bill.ApprovalStatus = models.ApprovalPending
	}
	if bill.PaymentStatus == "" {
		bill.PaymentStatus = models.PaymentUnpaid
	}
	if bill.ReceivedDate.IsZero() {
		bill.ReceivedDate = now
	}
	bill.CreatedAt = now
	bill.UpdatedAt = now

	bills = append(bills, bill)
	if err := col.Save(ctx, bills); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"bill_id":     bill.ID,
		"utility":     utility,
		"branch_site": bill.BranchSite,
		"month":       bill.Month,
	}).Info("Created utility bill")
	return &bill, nil
}

// UpdateStatuses applies sub-status changes to a bill and recomputes the
// derived BillStatus through the cascade, stamping companion dates on first
// transition.
func (s *BillService) UpdateStatuses(ctx context.Context, utility, id string, update status.BillUpdate) (*models.UtilityBill, error) {
	col, err := s.collectionFor(utility)
	if err != nil {
		return nil, err
	}
	bills, err := col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			now := time.Now()
			bills[i] = status.ApplyBillUpdate(bills[i], update, now)
			bills[i].UpdatedAt = now
			if err := col.Save(ctx, bills); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{
				"bill_id":     id,
				"utility":     utility,
				"bill_status": bills[i].BillStatus,
			}).Info("Updated bill statuses")
			return &bills[i], nil
		}
	}
	return nil, ErrNotFound
}

// OverrideStatus sets the display status directly, bypassing the cascade.
// This is the only path to "Uploaded to Coupa".
func (s *BillService) OverrideStatus(ctx context.Context, utility, id, billStatus string) (*models.UtilityBill, error) {
	col, err := s.collectionFor(utility)
	if err != nil {
		return nil, err
	}
	bills, err := col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			bills[i] = status.OverrideBillStatus(bills[i], billStatus)
			bills[i].UpdatedAt = time.Now()
			if err := col.Save(ctx, bills); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{
				"bill_id":     id,
				"bill_status": billStatus,
			}).Info("Overrode bill status")
			return &bills[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a bill by ID.
func (s *BillService) Delete(ctx context.Context, utility, id string) error {
	col, err := s.collectionFor(utility)
	if err != nil {
		return err
	}
	bills, err := col.Load(ctx)
	if err != nil {
		return err
	}

	filtered := bills[:0]
	found := false
	for i := range bills {
		if bills[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, bills[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := col.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"bill_id": id, "utility": utility}).Info("Deleted utility bill")
	return nil
}
