package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

const collectionColumns = `
	id,
	collector_id,
	customer_id,
	localbody,
	ward,
	location,
	building_no,
	street_name,
	kg,
	rate_per_kg,
	total_amount,
	photo_path,
	created_at
`

func (r *CollectionRepository) CreateCollection(ctx context.Context, collection model.WasteCollection) (*model.WasteCollection, error) {
	var saved model.WasteCollection
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO waste_collections (
			collector_id,
			customer_id,
			localbody,
			ward,
			location,
			building_no,
			street_name,
			kg,
			rate_per_kg,
			total_amount,
			photo_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+collectionColumns,
		collection.CollectorID,
		collection.CustomerID,
		collection.Localbody,
		collection.Ward,
		collection.Location,
		collection.BuildingNo,
		collection.StreetName,
		collection.KG,
		collection.RatePerKG,
		collection.TotalAmount,
		collection.PhotoPath,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateCollection rewrites the record's mutable fields. rate_per_kg is
// deliberately untouched: the rate was resolved once at creation.
func (r *CollectionRepository) UpdateCollection(ctx context.Context, collection model.WasteCollection) (*model.WasteCollection, error) {
	var saved model.WasteCollection
	err := r.db.WithContext(ctx).Raw(`
		UPDATE waste_collections
		SET
			customer_id = ?,
			localbody = ?,
			ward = ?,
			location = ?,
			building_no = ?,
			street_name = ?,
			kg = ?,
			total_amount = ?,
			photo_path = ?
		WHERE id = ?
		RETURNING `+collectionColumns,
		collection.CustomerID,
		collection.Localbody,
		collection.Ward,
		collection.Location,
		collection.BuildingNo,
		collection.StreetName,
		collection.KG,
		collection.TotalAmount,
		collection.PhotoPath,
		collection.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

// GetCollection fetches a record scoped to its creating collector.
func (r *CollectionRepository) GetCollection(ctx context.Context, id, collectorID uuid.UUID) (*model.WasteCollection, error) {
	var collection model.WasteCollection
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+collectionColumns+`
		FROM waste_collections
		WHERE id = ? AND collector_id = ?
		LIMIT 1
	`, id, collectorID).Scan(&collection).Error
	if err != nil {
		return nil, err
	}
	if collection.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &collection, nil
}

func (r *CollectionRepository) ListCollections(ctx context.Context, collectorID uuid.UUID) ([]model.WasteCollection, error) {
	var collections []model.WasteCollection
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+collectionColumns+`
		FROM waste_collections
		WHERE collector_id = ?
		ORDER BY created_at DESC
	`, collectorID).Scan(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *CollectionRepository) DeleteCollection(ctx context.Context, id, collectorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM waste_collections WHERE id = ? AND collector_id = ?
	`, id, collectorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LocalbodyStats groups period records by their localbody snapshot,
// revenue descending. Localities without records simply do not appear.
func (r *CollectionRepository) LocalbodyStats(ctx context.Context, from, to time.Time) ([]model.LocalbodyStat, error) {
	var stats []model.LocalbodyStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			localbody,
			COALESCE(SUM(kg), 0) AS total_weight_kg,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COUNT(*) AS collection_count
		FROM waste_collections
		WHERE created_at >= ? AND created_at < ?
		GROUP BY localbody
		ORDER BY total_revenue DESC
	`, from, to).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
