package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NABEEL165/suchigo-project/internal/address"
	"github.com/NABEEL165/suchigo-project/internal/model"
)

type CollectionStore interface {
	CreateCollection(ctx context.Context, collection model.WasteCollection) (*model.WasteCollection, error)
	UpdateCollection(ctx context.Context, collection model.WasteCollection) (*model.WasteCollection, error)
	GetCollection(ctx context.Context, id, collectorID uuid.UUID) (*model.WasteCollection, error)
	ListCollections(ctx context.Context, collectorID uuid.UUID) ([]model.WasteCollection, error)
	DeleteCollection(ctx context.Context, id, collectorID uuid.UUID) error
}

type RateResolver interface {
	GetRate(ctx context.Context, localbodyID uuid.UUID) (rate float64, found bool, err error)
}

type LocalBodyReader interface {
	GetLocalBody(ctx context.Context, id uuid.UUID) (*model.LocalBody, error)
}

type PhotoStore interface {
	Save(photoData string) (string, error)
	Remove(path string) error
}

type ProfileReader interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (*model.WasteProfile, error)
}

type CollectionService struct {
	collections CollectionStore
	rates       RateResolver
	localbodies LocalBodyReader
	profiles    ProfileReader
	photos      PhotoStore
	defaultRate float64
	log         zerolog.Logger
}

func NewCollectionService(
	collections CollectionStore,
	rates RateResolver,
	localbodies LocalBodyReader,
	profiles ProfileReader,
	photos PhotoStore,
	defaultRate float64,
	log zerolog.Logger,
) *CollectionService {
	return &CollectionService{
		collections: collections,
		rates:       rates,
		localbodies: localbodies,
		profiles:    profiles,
		photos:      photos,
		defaultRate: defaultRate,
		log:         log,
	}
}

type CollectionInput struct {
	CustomerID  uuid.UUID
	LocalbodyID uuid.UUID
	Localbody   string
	Ward        string
	Location    string
	BuildingNo  string
	StreetName  string
	KG          float64
	PhotoData   string
}

// Create records a completed collection. Photo evidence is mandatory
// and is stored before the insert; a storage failure aborts the whole
// creation. The billing rate is resolved exactly once here and fixed on
// the record.
func (s *CollectionService) Create(ctx context.Context, principal model.Principal, input CollectionInput) (*model.WasteCollection, error) {
	if !principal.IsCollector() {
		return nil, ErrPermissionDenied
	}
	if err := validateCollectionInput(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.PhotoData) == "" {
		return nil, fmt.Errorf("%w: photo evidence is required", ErrInvalidInput)
	}

	rate := s.resolveRate(ctx, input.LocalbodyID)

	photoPath, err := s.photos.Save(input.PhotoData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	collection := collectionFromInput(input)
	collection.CollectorID = principal.UserID
	collection.RatePerKG = rate
	collection.TotalAmount = input.KG * rate
	collection.PhotoPath = &photoPath

	saved, err := s.collections.CreateCollection(ctx, collection)
	if err != nil {
		if removeErr := s.photos.Remove(photoPath); removeErr != nil {
			s.log.Warn().Err(removeErr).Str("path", photoPath).Msg("orphaned collection photo")
		}
		return nil, err
	}
	return saved, nil
}

// resolveRate collapses every lookup outcome deterministically: a
// present, positive configured rate wins; a missing row, a lookup
// error or a malformed stored value all fall back to the default. The
// fallback never surfaces to the caller.
func (s *CollectionService) resolveRate(ctx context.Context, localbodyID uuid.UUID) float64 {
	if localbodyID == uuid.Nil {
		return s.defaultRate
	}

	rate, found, err := s.rates.GetRate(ctx, localbodyID)
	if err != nil {
		s.log.Warn().Err(err).Str("localbody_id", localbodyID.String()).Msg("rate lookup failed, using default rate")
		return s.defaultRate
	}
	if !found || rate <= 0 {
		return s.defaultRate
	}
	return rate
}

// Update rewrites a record owned by the acting collector. The stored
// rate is never re-resolved; the total is recomputed from it when the
// weight changes. A replacement photo is optional here.
func (s *CollectionService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input CollectionInput) (*model.WasteCollection, error) {
	if !principal.IsCollector() {
		return nil, ErrPermissionDenied
	}
	if err := validateCollectionInput(input); err != nil {
		return nil, err
	}

	existing, err := s.collections.GetCollection(ctx, id, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	collection := collectionFromInput(input)
	collection.ID = existing.ID
	collection.CollectorID = existing.CollectorID
	collection.RatePerKG = existing.RatePerKG
	collection.TotalAmount = input.KG * existing.RatePerKG
	collection.PhotoPath = existing.PhotoPath

	var newPhotoPath string
	if strings.TrimSpace(input.PhotoData) != "" {
		newPhotoPath, err = s.photos.Save(input.PhotoData)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		collection.PhotoPath = &newPhotoPath
	}

	saved, err := s.collections.UpdateCollection(ctx, collection)
	if err != nil {
		if newPhotoPath != "" {
			_ = s.photos.Remove(newPhotoPath)
		}
		return nil, mapNotFound(err)
	}

	if newPhotoPath != "" && existing.PhotoPath != nil {
		if removeErr := s.photos.Remove(*existing.PhotoPath); removeErr != nil {
			s.log.Warn().Err(removeErr).Str("path", *existing.PhotoPath).Msg("stale collection photo left behind")
		}
	}
	return saved, nil
}

func (s *CollectionService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.WasteCollection, error) {
	if !principal.IsCollector() {
		return nil, ErrPermissionDenied
	}

	collection, err := s.collections.GetCollection(ctx, id, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return collection, nil
}

func (s *CollectionService) List(ctx context.Context, principal model.Principal) ([]model.WasteCollection, error) {
	if !principal.IsCollector() {
		return nil, ErrPermissionDenied
	}
	return s.collections.ListCollections(ctx, principal.UserID)
}

func (s *CollectionService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsCollector() {
		return ErrPermissionDenied
	}

	existing, err := s.collections.GetCollection(ctx, id, principal.UserID)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.collections.DeleteCollection(ctx, id, principal.UserID); err != nil {
		return mapNotFound(err)
	}
	if existing.PhotoPath != nil {
		if removeErr := s.photos.Remove(*existing.PhotoPath); removeErr != nil {
			s.log.Warn().Err(removeErr).Str("path", *existing.PhotoPath).Msg("orphaned collection photo")
		}
	}
	return nil
}

// Prefill proposes initial record values from a customer's waste
// profile. The address decomposition is a best-effort guess; callers
// may discard any of it and nothing here blocks record creation.
type Prefill struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	LocalbodyID uuid.UUID `json:"localbody_id"`
	Localbody   string    `json:"localbody"`
	Ward        string    `json:"ward"`
	Location    string    `json:"location"`
	BuildingNo  string    `json:"building_no"`
	StreetName  string    `json:"street_name"`
}

func (s *CollectionService) PrefillFromProfile(ctx context.Context, principal model.Principal, profileID uuid.UUID) (*Prefill, error) {
	if !principal.IsCollector() {
		return nil, ErrPermissionDenied
	}

	profile, err := s.profiles.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	prefill := &Prefill{
		CustomerID:  profile.UserID,
		LocalbodyID: profile.LocalbodyID,
		Ward:        profile.Ward,
		Location:    profile.PickupAddress,
	}

	parts := address.Split(profile.PickupAddress)
	prefill.BuildingNo = parts.BuildingNo
	prefill.StreetName = parts.StreetName

	if localbody, err := s.localbodies.GetLocalBody(ctx, profile.LocalbodyID); err == nil {
		prefill.Localbody = localbody.Name
	}
	return prefill, nil
}

func collectionFromInput(input CollectionInput) model.WasteCollection {
	return model.WasteCollection{
		CustomerID: input.CustomerID,
		Localbody:  strings.TrimSpace(input.Localbody),
		Ward:       strings.TrimSpace(input.Ward),
		Location:   strings.TrimSpace(input.Location),
		BuildingNo: strings.TrimSpace(input.BuildingNo),
		StreetName: strings.TrimSpace(input.StreetName),
		KG:         input.KG,
	}
}

func validateCollectionInput(input CollectionInput) error {
	if input.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Localbody) == "" {
		return fmt.Errorf("%w: localbody is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Ward) == "" {
		return fmt.Errorf("%w: ward is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if input.KG <= 0 {
		return fmt.Errorf("%w: kg must be positive", ErrInvalidInput)
	}
	return nil
}
