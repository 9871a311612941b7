package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id,
	user_id,
	full_name,
	secondary_number,
	pickup_address,
	landmark,
	latitude,
	longitude,
	state_id,
	district_id,
	localbody_id,
	ward,
	number_of_bags,
	waste_type,
	comments,
	pincode,
	status,
	assigned_collector_id,
	created_at
`

// CreateProfile inserts the profile and, when its coordinates are set,
// the first location_history row, in one transaction.
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile model.WasteProfile) (*model.WasteProfile, error) {
	var saved model.WasteProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO waste_profiles (
				user_id,
				full_name,
				secondary_number,
				pickup_address,
				landmark,
				latitude,
				longitude,
				state_id,
				district_id,
				localbody_id,
				ward,
				number_of_bags,
				waste_type,
				comments,
				pincode,
				status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+profileColumns,
			profile.UserID,
			profile.FullName,
			profile.SecondaryNumber,
			profile.PickupAddress,
			profile.Landmark,
			profile.Latitude,
			profile.Longitude,
			profile.StateID,
			profile.DistrictID,
			profile.LocalbodyID,
			profile.Ward,
			profile.NumberOfBags,
			profile.WasteType,
			profile.Comments,
			profile.Pincode,
			profile.Status,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		if saved.HasCoordinates() {
			return insertLocationHistory(tx, saved.ID, *saved.Latitude, *saved.Longitude, saved.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateProfile replaces every mutable field. When appendHistory is
// set a location_history row is written in the same transaction.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile model.WasteProfile, appendHistory bool, changedBy uuid.UUID) (*model.WasteProfile, error) {
	var saved model.WasteProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			UPDATE waste_profiles
			SET
				full_name = ?,
				secondary_number = ?,
				pickup_address = ?,
				landmark = ?,
				latitude = ?,
				longitude = ?,
				state_id = ?,
				district_id = ?,
				localbody_id = ?,
				ward = ?,
				number_of_bags = ?,
				waste_type = ?,
				comments = ?,
				pincode = ?
			WHERE id = ?
			RETURNING `+profileColumns,
			profile.FullName,
			profile.SecondaryNumber,
			profile.PickupAddress,
			profile.Landmark,
			profile.Latitude,
			profile.Longitude,
			profile.StateID,
			profile.DistrictID,
			profile.LocalbodyID,
			profile.Ward,
			profile.NumberOfBags,
			profile.WasteType,
			profile.Comments,
			profile.Pincode,
			profile.ID,
		).Scan(&saved).Error
		if err != nil {
			return err
		}
		if saved.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		if appendHistory && saved.HasCoordinates() {
			return insertLocationHistory(tx, saved.ID, *saved.Latitude, *saved.Longitude, changedBy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func insertLocationHistory(tx *gorm.DB, profileID uuid.UUID, lat, lng float64, changedBy uuid.UUID) error {
	return tx.Exec(`
		INSERT INTO location_history (waste_profile_id, latitude, longitude, changed_by)
		VALUES (?, ?, ?, ?)
	`, profileID, lat, lng, changedBy).Error
}

// GetProfile fetches a profile scoped to its owner; a foreign id is
// indistinguishable from a missing one.
func (r *ProfileRepository) GetProfile(ctx context.Context, id, userID uuid.UUID) (*model.WasteProfile, error) {
	var profile model.WasteProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM waste_profiles
		WHERE id = ? AND user_id = ?
		LIMIT 1
	`, id, userID).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

// GetProfileByID fetches a profile regardless of owner. Only the
// collector prefill and the admin collector assignment use it.
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*model.WasteProfile, error) {
	var profile model.WasteProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM waste_profiles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context, userID uuid.UUID) ([]model.WasteProfile, error) {
	var profiles []model.WasteProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM waste_profiles
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) ListAssignedProfiles(ctx context.Context, collectorID uuid.UUID) ([]model.WasteProfile, error) {
	var profiles []model.WasteProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM waste_profiles
		WHERE assigned_collector_id = ?
		ORDER BY created_at DESC
	`, collectorID).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListGeolocatedProfiles returns the customer's profiles that carry
// coordinates, for the map export.
func (r *ProfileRepository) ListGeolocatedProfiles(ctx context.Context, userID uuid.UUID) ([]model.WasteProfile, error) {
	var profiles []model.WasteProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM waste_profiles
		WHERE user_id = ?
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
		ORDER BY created_at DESC
	`, userID).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteProfile removes the profile; location history and pickup
// selections go with it via ON DELETE CASCADE.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM waste_profiles WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepository) AssignCollector(ctx context.Context, id, collectorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE waste_profiles
		SET assigned_collector_id = ?
		WHERE id = ?
	`, collectorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListLocationHistory returns the newest entries first. limit <= 0
// means the full trail.
func (r *ProfileRepository) ListLocationHistory(ctx context.Context, profileID uuid.UUID, limit int) ([]model.LocationHistory, error) {
	query := `
		SELECT id, waste_profile_id, latitude, longitude, changed_by, changed_at
		FROM location_history
		WHERE waste_profile_id = ?
		ORDER BY changed_at DESC
	`
	args := []interface{}{profileID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var history []model.LocationHistory
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
