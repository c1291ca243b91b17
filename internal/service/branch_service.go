package service

import (
	"context"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
)

type BranchService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateBranchRequest) (*dto.BranchResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.BranchResponse, error)
}

type branchService struct {
	branches     repository.BranchRepository
	distributors repository.DistributorRepository
}

func NewBranchService(branches repository.BranchRepository, distributors repository.DistributorRepository) BranchService {
	return &branchService{branches: branches, distributors: distributors}
}

func (s *branchService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	branch := &model.Branch{
		DistributorID: dist.ID,
		Name:          req.Name,
		Location:      req.Location,
	}
	if req.Manager != nil {
		managerID, err := uuid.Parse(*req.Manager)
		if err != nil {
			return nil, err
		}
		branch.ManagerID = &managerID
	}

	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branchToResponse(branch), nil
}

func (s *branchService) List(ctx context.Context, userID uuid.UUID) ([]dto.BranchResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	branches, err := s.branches.ListByDistributor(ctx, dist.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		out = append(out, *branchToResponse(&branches[i]))
	}
	return out, nil
}

func branchToResponse(b *model.Branch) *dto.BranchResponse {
	resp := &dto.BranchResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Location:  b.Location,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.ManagerID != nil {
		id := b.ManagerID.String()
		resp.ManagerID = &id
	}
	return resp
}
