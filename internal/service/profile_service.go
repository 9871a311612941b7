package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/geo"
	"github.com/NABEEL165/suchigo-project/internal/model"
)

type ProfileStore interface {
	CreateProfile(ctx context.Context, profile model.WasteProfile) (*model.WasteProfile, error)
	UpdateProfile(ctx context.Context, profile model.WasteProfile, appendHistory bool, changedBy uuid.UUID) (*model.WasteProfile, error)
	GetProfile(ctx context.Context, id, userID uuid.UUID) (*model.WasteProfile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*model.WasteProfile, error)
	ListProfiles(ctx context.Context, userID uuid.UUID) ([]model.WasteProfile, error)
	ListAssignedProfiles(ctx context.Context, collectorID uuid.UUID) ([]model.WasteProfile, error)
	ListGeolocatedProfiles(ctx context.Context, userID uuid.UUID) ([]model.WasteProfile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	AssignCollector(ctx context.Context, id, collectorID uuid.UUID) error
	ListLocationHistory(ctx context.Context, profileID uuid.UUID, limit int) ([]model.LocationHistory, error)
}

type SelectionStore interface {
	GetCalendarEntry(ctx context.Context, id uuid.UUID) (*model.CalendarEntry, error)
	ReplaceProfileSelection(ctx context.Context, userID, profileID, calendarID uuid.UUID) error
}

type ProfileService struct {
	profiles   ProfileStore
	selections SelectionStore
}

func NewProfileService(profiles ProfileStore, selections SelectionStore) *ProfileService {
	return &ProfileService{profiles: profiles, selections: selections}
}

// ProfileInput carries one full set of profile fields. Coordinates
// arrive raw; the shared validator decides whether they are kept.
type ProfileInput struct {
	FullName        string
	SecondaryNumber string
	PickupAddress   string
	Landmark        string
	LatitudeRaw     string
	LongitudeRaw    string
	StateID         uuid.UUID
	DistrictID      uuid.UUID
	LocalbodyID     uuid.UUID
	Ward            string
	NumberOfBags    int
	WasteType       string
	Comments        string
	Pincode         string
	SelectedDateID  *uuid.UUID
}

// ProfileResult is a committed profile write. ScheduleWarning is set
// when the requested pickup date did not resolve; the profile write
// itself still stands.
type ProfileResult struct {
	Profile         *model.WasteProfile
	ScheduleWarning string
}

type ProfileDetail struct {
	Profile         *model.WasteProfile
	RecentLocations []model.LocationHistory
}

func (s *ProfileService) Create(ctx context.Context, principal model.Principal, input ProfileInput) (*ProfileResult, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile := profileFromInput(input)
	profile.UserID = principal.UserID
	profile.Status = model.ProfileStatusActive

	saved, err := s.profiles.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	warning := s.applySelection(ctx, principal, saved.ID, input.SelectedDateID)
	return &ProfileResult{Profile: saved, ScheduleWarning: warning}, nil
}

func (s *ProfileService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input ProfileInput) (*ProfileResult, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	existing, err := s.profiles.GetProfile(ctx, id, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	profile := profileFromInput(input)
	profile.ID = existing.ID
	profile.UserID = existing.UserID

	// The audit trail grows only when a complete new pair differs from
	// the stored one.
	appendHistory := false
	if profile.HasCoordinates() {
		if !existing.HasCoordinates() {
			appendHistory = true
		} else {
			oldPair := geo.Coordinates{Latitude: *existing.Latitude, Longitude: *existing.Longitude}
			newPair := geo.Coordinates{Latitude: *profile.Latitude, Longitude: *profile.Longitude}
			appendHistory = !oldPair.Equal(newPair)
		}
	}

	saved, err := s.profiles.UpdateProfile(ctx, profile, appendHistory, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	warning := s.applySelection(ctx, principal, saved.ID, input.SelectedDateID)
	return &ProfileResult{Profile: saved, ScheduleWarning: warning}, nil
}

// applySelection resolves and replaces the profile's pickup selection.
// Failures come back as a warning because the profile write has already
// committed and must not be rolled back over a scheduling problem.
func (s *ProfileService) applySelection(ctx context.Context, principal model.Principal, profileID uuid.UUID, selectedDateID *uuid.UUID) string {
	if selectedDateID == nil {
		return ""
	}

	entry, err := s.selections.GetCalendarEntry(ctx, *selectedDateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidPickupDate.Error()
		}
		return "could not save pickup date selection"
	}
	if err := s.selections.ReplaceProfileSelection(ctx, principal.UserID, profileID, entry.ID); err != nil {
		return "could not save pickup date selection"
	}
	return ""
}

func (s *ProfileService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*ProfileDetail, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	profile, err := s.profiles.GetProfile(ctx, id, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	history, err := s.profiles.ListLocationHistory(ctx, profile.ID, 5)
	if err != nil {
		return nil, err
	}
	return &ProfileDetail{Profile: profile, RecentLocations: history}, nil
}

// List returns the customer's own profiles; for a collector it returns
// the profiles assigned to them instead.
func (s *ProfileService) List(ctx context.Context, principal model.Principal) ([]model.WasteProfile, error) {
	switch {
	case principal.IsCustomer():
		return s.profiles.ListProfiles(ctx, principal.UserID)
	case principal.IsCollector():
		return s.profiles.ListAssignedProfiles(ctx, principal.UserID)
	default:
		return nil, ErrPermissionDenied
	}
}

func (s *ProfileService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsCustomer() {
		return ErrPermissionDenied
	}

	if _, err := s.profiles.GetProfile(ctx, id, principal.UserID); err != nil {
		return mapNotFound(err)
	}
	return mapNotFound(s.profiles.DeleteProfile(ctx, id))
}

func (s *ProfileService) LocationHistory(ctx context.Context, principal model.Principal, id uuid.UUID) ([]model.LocationHistory, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	if _, err := s.profiles.GetProfile(ctx, id, principal.UserID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.profiles.ListLocationHistory(ctx, id, 0)
}

func (s *ProfileService) AssignCollector(ctx context.Context, principal model.Principal, id, collectorID uuid.UUID) error {
	if !(principal.IsAdmin() || principal.IsSuperAdmin()) {
		return ErrPermissionDenied
	}
	if collectorID == uuid.Nil {
		return fmt.Errorf("%w: collector_id is required", ErrInvalidInput)
	}
	return mapNotFound(s.profiles.AssignCollector(ctx, id, collectorID))
}

// ExportLocations returns the customer's geolocated profiles for the
// map/analytics export.
func (s *ProfileService) ExportLocations(ctx context.Context, principal model.Principal) ([]model.WasteProfile, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	return s.profiles.ListGeolocatedProfiles(ctx, principal.UserID)
}

func profileFromInput(input ProfileInput) model.WasteProfile {
	profile := model.WasteProfile{
		FullName:        strings.TrimSpace(input.FullName),
		SecondaryNumber: strings.TrimSpace(input.SecondaryNumber),
		PickupAddress:   strings.TrimSpace(input.PickupAddress),
		Landmark:        strings.TrimSpace(input.Landmark),
		StateID:         input.StateID,
		DistrictID:      input.DistrictID,
		LocalbodyID:     input.LocalbodyID,
		Ward:            strings.TrimSpace(input.Ward),
		NumberOfBags:    input.NumberOfBags,
		WasteType:       strings.TrimSpace(input.WasteType),
		Comments:        strings.TrimSpace(input.Comments),
		Pincode:         strings.TrimSpace(input.Pincode),
	}

	if coords, ok := geo.ValidateCoordinates(input.LatitudeRaw, input.LongitudeRaw); ok {
		profile.Latitude = &coords.Latitude
		profile.Longitude = &coords.Longitude
	}
	return profile
}

func validateProfileInput(input ProfileInput) error {
	if strings.TrimSpace(input.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.PickupAddress) == "" {
		return fmt.Errorf("%w: pickup_address is required", ErrInvalidInput)
	}
	if input.StateID == uuid.Nil || input.DistrictID == uuid.Nil || input.LocalbodyID == uuid.Nil {
		return fmt.Errorf("%w: state, district and localbody are required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Ward) == "" {
		return fmt.Errorf("%w: ward is required", ErrInvalidInput)
	}
	if input.NumberOfBags <= 0 {
		return fmt.Errorf("%w: number_of_bags must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(input.WasteType) == "" {
		return fmt.Errorf("%w: waste_type is required", ErrInvalidInput)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
