package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type LocalityStore interface {
	ListStates(ctx context.Context) ([]model.State, error)
	ListDistricts(ctx context.Context, stateID uuid.UUID) ([]model.District, error)
	ListLocalBodies(ctx context.Context, districtID uuid.UUID) ([]model.LocalBody, error)
}

// LocalityService serves the cascading reference-data lookups backing
// the state → district → localbody selectors. Read-only, any
// authenticated role.
type LocalityService struct {
	store LocalityStore
}

func NewLocalityService(store LocalityStore) *LocalityService {
	return &LocalityService{store: store}
}

func (s *LocalityService) States(ctx context.Context) ([]model.State, error) {
	return s.store.ListStates(ctx)
}

func (s *LocalityService) Districts(ctx context.Context, stateID uuid.UUID) ([]model.District, error) {
	return s.store.ListDistricts(ctx, stateID)
}

func (s *LocalityService) LocalBodies(ctx context.Context, districtID uuid.UUID) ([]model.LocalBody, error) {
	return s.store.ListLocalBodies(ctx, districtID)
}
