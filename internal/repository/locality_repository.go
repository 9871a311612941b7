package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type LocalityRepository struct {
	db *gorm.DB
}

func NewLocalityRepository(db *gorm.DB) *LocalityRepository {
	return &LocalityRepository{db: db}
}

func (r *LocalityRepository) ListStates(ctx context.Context) ([]model.State, error) {
	var states []model.State
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM states
		ORDER BY name ASC
	`).Scan(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (r *LocalityRepository) ListDistricts(ctx context.Context, stateID uuid.UUID) ([]model.District, error) {
	var districts []model.District
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, state_id, name
		FROM districts
		WHERE state_id = ?
		ORDER BY name ASC
	`, stateID).Scan(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *LocalityRepository) ListLocalBodies(ctx context.Context, districtID uuid.UUID) ([]model.LocalBody, error) {
	var localbodies []model.LocalBody
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, district_id, name, body_type
		FROM localbodies
		WHERE district_id = ?
		ORDER BY name ASC
	`, districtID).Scan(&localbodies).Error; err != nil {
		return nil, err
	}
	return localbodies, nil
}

func (r *LocalityRepository) GetLocalBody(ctx context.Context, id uuid.UUID) (*model.LocalBody, error) {
	var localbody model.LocalBody
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, district_id, name, body_type
		FROM localbodies
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&localbody).Error
	if err != nil {
		return nil, err
	}
	if localbody.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &localbody, nil
}

// GetRate looks up the local body's configured rate. found=false with a
// nil error means no rate row exists; the caller decides the fallback.
func (r *LocalityRepository) GetRate(ctx context.Context, localbodyID uuid.UUID) (rate float64, found bool, err error) {
	var info model.RateInfo
	err = r.db.WithContext(ctx).Raw(`
		SELECT id, localbody_id, rate_per_kg
		FROM localbody_rates
		WHERE localbody_id = ?
		LIMIT 1
	`, localbodyID).Scan(&info).Error
	if err != nil {
		return 0, false, err
	}
	if info.ID == uuid.Nil {
		return 0, false, nil
	}
	return info.RatePerKG, true, nil
}
