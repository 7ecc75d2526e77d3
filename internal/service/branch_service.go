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

// BranchService manages the branch collection.
type BranchService struct {
	branches *repo.Collection[models.Branch]
}

// NewBranchService creates a branch service over a store.
func NewBranchService(s store.Store) *BranchService {
	return &BranchService{branches: repo.NewCollection[models.Branch](s, store.KeyBranches)}
}

// List returns all branches.
func (s *BranchService) List(ctx context.Context) ([]models.Branch, error) {
	return s.branches.Load(ctx)
}

// Get returns one branch by ID.
func (s *BranchService) Get(ctx context.Context, id string) (*models.Branch, error) {
	branches, err := s.branches.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].ID == id {
			return &branches[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and appends a new branch.
func (s *BranchService) Create(ctx context.Context, branch models.Branch) (*models.Branch, error) {
	if err := required("name", branch.Name); err != nil {
		return nil, err
	}
	if err := required("code", branch.Code); err != nil {
		return nil, err
	}

	branches, err := s.branches.Load(ctx)
	if err != nil {
		return nil, err
	}

	branch.ID = uuid.NewString()
	if branch.Status == "" {
		branch.Status = models.BranchActive
	}
	branch.CreatedAt = time.Now()
	branch.UpdatedAt = branch.CreatedAt

	branches = append(branches, branch)
	if err := s.branches.Save(ctx, branches); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"branch_id": branch.ID, "name": branch.Name}).Info("Created branch")
	return &branch, nil
}

// Update replaces a branch by ID.
func (s *BranchService) Update(ctx context.Context, id string, branch models.Branch) (*models.Branch, error) {
	if err := required("name", branch.Name); err != nil {
		return nil, err
	}

	branches, err := s.branches.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].ID == id {
			branch.ID = id
			branch.CreatedAt = branches[i].CreatedAt
			branch.UpdatedAt = time.Now()
			branches[i] = branch
			if err := s.branches.Save(ctx, branches); err != nil {
				return nil, err
			}
			log.WithFields(log.Fields{"branch_id": id}).Info("Updated branch")
			return &branches[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a branch by ID.
func (s *BranchService) Delete(ctx context.Context, id string) error {
	branches, err := s.branches.Load(ctx)
	if err != nil {
		return err
	}

	filtered := branches[:0]
	found := false
	for i := range branches {
		if branches[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, branches[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.branches.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"branch_id": id}).Info("Deleted branch")
	return nil
}
