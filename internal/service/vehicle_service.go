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

// VehicleService manages the vehicle collection.
type VehicleService struct {
	vehicles *repo.Collection[models.Vehicle]
}

// NewVehicleService creates a vehicle service over a store.
func NewVehicleService(s store.Store) *VehicleService {
	return &VehicleService{vehicles: repo.NewCollection[models.Vehicle](s, store.KeyVehicles)}
}

// List returns all vehicles.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.Load(ctx)
}

// Get returns one vehicle by ID.
func (s *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicles, err := s.vehicles.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and appends a new vehicle.
func (s *VehicleService) Create(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	if err := required("registration", vehicle.Registration); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicles.Load(ctx)
	if err != nil {
		return nil, err
	}

	vehicle.ID = uuid.NewString()
	if vehicle.Status == "" {
		vehicle.Status = "Active"
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	vehicles = append(vehicles, vehicle)
	if err := s.vehicles.Save(ctx, vehicles); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"vehicle_id": vehicle.ID, "registration": vehicle.Registration}).Info("Created vehicle")
	return &vehicle, nil
}

// Update replaces a vehicle by ID.
func (s *VehicleService) Update(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	vehicles, err := s.vehicles.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			vehicle.ID = id
			vehicle.CreatedAt = vehicles[i].CreatedAt
			vehicle.UpdatedAt = time.Now()
			vehicles[i] = vehicle
			if err := s.vehicles.Save(ctx, vehicles); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"vehicle_id": id}).Info("Updated vehicle")
			return &vehicles[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a vehicle by ID.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	vehicles, err := s.vehicles.Load(ctx)
	if err != nil {
		return err
	}

	filtered := vehicles[:0]
	found := false
	for i := range vehicles {
		if vehicles[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, vehicles[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.vehicles.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"vehicle_id": id}).Info("Deleted vehicle")
	return nil
}
