package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) GetCalendarEntry(ctx context.Context, id uuid.UUID) (*model.CalendarEntry, error) {
	var entry model.CalendarEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, localbody_id, date
		FROM localbody_calendar
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

func (r *ScheduleRepository) ListCalendarEntries(ctx context.Context, localbodyID uuid.UUID) ([]model.CalendarEntry, error) {
	var entries []model.CalendarEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, localbody_id, date
		FROM localbody_calendar
		WHERE localbody_id = ?
		ORDER BY date ASC
	`, localbodyID).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertSelection replaces the customer's selection in one statement.
// The unique index on user_id serializes concurrent replacements, so a
// subject can never hold two selections.
func (r *ScheduleRepository) UpsertSelection(ctx context.Context, userID, calendarID uuid.UUID) (created bool, err error) {
	var inserted bool
	err = r.db.WithContext(ctx).Raw(`
		INSERT INTO pickup_dates (user_id, calendar_id)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET calendar_id = EXCLUDED.calendar_id,
			waste_profile_id = NULL,
			created_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`, userID, calendarID).Scan(&inserted).Error
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// ReplaceProfileSelection drops the profile's current selection and
// writes the new one; no unselected state is ever visible outside the
// transaction.
func (r *ScheduleRepository) ReplaceProfileSelection(ctx context.Context, userID, profileID, calendarID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM pickup_dates WHERE user_id = ? OR waste_profile_id = ?
		`, userID, profileID).Error; err != nil {
			return err
		}
		return tx.Exec(`
			INSERT INTO pickup_dates (user_id, waste_profile_id, calendar_id)
			VALUES (?, ?, ?)
		`, userID, profileID, calendarID).Error
	})
}

func (r *ScheduleRepository) GetSelection(ctx context.Context, userID uuid.UUID) (*model.PickupSelection, error) {
	var selection model.PickupSelection
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, waste_profile_id, calendar_id, created_at
		FROM pickup_dates
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&selection).Error
	if err != nil {
		return nil, err
	}
	if selection.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &selection, nil
}
