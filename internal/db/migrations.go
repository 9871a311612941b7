package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'waste_profile_status') THEN
			CREATE TYPE waste_profile_status AS ENUM ('ACTIVE', 'INACTIVE');
		END IF;
	END
	$$;`,
	// The auth service owns this table; the definition here only
	// covers a fresh database so the foreign keys below resolve.
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(254) NOT NULL UNIQUE,
		role VARCHAR(20) NOT NULL DEFAULT 'CUSTOMER',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS states (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS districts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		state_id UUID NOT NULL REFERENCES states(id),
		name VARCHAR(100) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS localbodies (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		district_id UUID NOT NULL REFERENCES districts(id),
		name VARCHAR(100) NOT NULL,
		body_type VARCHAR(50) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS localbody_rates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		localbody_id UUID NOT NULL REFERENCES localbodies(id),
		rate_per_kg NUMERIC(10,2) NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_localbody_rates_localbody ON localbody_rates (localbody_id);`,
	`CREATE TABLE IF NOT EXISTS localbody_calendar (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		localbody_id UUID NOT NULL REFERENCES localbodies(id),
		date DATE NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_localbody_calendar_localbody ON localbody_calendar (localbody_id);`,
	`CREATE TABLE IF NOT EXISTS waste_profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		full_name VARCHAR(150) NOT NULL,
		secondary_number VARCHAR(20),
		pickup_address TEXT NOT NULL,
		landmark VARCHAR(200),
		latitude NUMERIC(9,6),
		longitude NUMERIC(9,6),
		state_id UUID NOT NULL REFERENCES states(id),
		district_id UUID NOT NULL REFERENCES districts(id),
		localbody_id UUID NOT NULL REFERENCES localbodies(id),
		ward VARCHAR(50) NOT NULL,
		number_of_bags INT NOT NULL,
		waste_type VARCHAR(50) NOT NULL,
		comments TEXT,
		pincode VARCHAR(10),
		status waste_profile_status NOT NULL DEFAULT 'ACTIVE',
		assigned_collector_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_waste_profiles_coordinates
			CHECK ((latitude IS NULL) = (longitude IS NULL))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_waste_profiles_user_id ON waste_profiles (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_waste_profiles_assigned_collector ON waste_profiles (assigned_collector_id) WHERE assigned_collector_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS location_history (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		waste_profile_id UUID NOT NULL REFERENCES waste_profiles(id) ON DELETE CASCADE,
		latitude NUMERIC(9,6) NOT NULL,
		longitude NUMERIC(9,6) NOT NULL,
		changed_by UUID NOT NULL REFERENCES users(id),
		changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_location_history_profile ON location_history (waste_profile_id, changed_at DESC);`,
	`CREATE TABLE IF NOT EXISTS pickup_dates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		waste_profile_id UUID REFERENCES waste_profiles(id) ON DELETE CASCADE,
		calendar_id UUID NOT NULL REFERENCES localbody_calendar(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_pickup_dates_user ON pickup_dates (user_id);`,
	`CREATE TABLE IF NOT EXISTS waste_collections (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		collector_id UUID NOT NULL REFERENCES users(id),
		customer_id UUID NOT NULL REFERENCES users(id),
		localbody VARCHAR(100) NOT NULL,
		ward VARCHAR(50) NOT NULL,
		location VARCHAR(200) NOT NULL,
		building_no VARCHAR(50) NOT NULL,
		street_name VARCHAR(100) NOT NULL,
		kg NUMERIC(6,2) NOT NULL,
		rate_per_kg NUMERIC(10,2) NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		photo_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_waste_collections_collector ON waste_collections (collector_id);`,
	`CREATE INDEX IF NOT EXISTS idx_waste_collections_created_at ON waste_collections (created_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
