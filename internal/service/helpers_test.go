package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

// In-memory stands-ins for the repositories, matching their contract:
// missing or foreign rows surface as gorm.ErrRecordNotFound.

type fakeProfileStore struct {
	profiles map[uuid.UUID]model.WasteProfile
	history  []model.LocationHistory
	clock    time.Time
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: make(map[uuid.UUID]model.WasteProfile),
		clock:    time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeProfileStore) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeProfileStore) CreateProfile(_ context.Context, profile model.WasteProfile) (*model.WasteProfile, error) {
	profile.ID = uuid.New()
	profile.CreatedAt = f.tick()
	f.profiles[profile.ID] = profile
	if profile.HasCoordinates() {
		f.appendHistory(profile.ID, *profile.Latitude, *profile.Longitude, profile.UserID)
	}
	return &profile, nil
}

func (f *fakeProfileStore) UpdateProfile(_ context.Context, profile model.WasteProfile, appendHistory bool, changedBy uuid.UUID) (*model.WasteProfile, error) {
	existing, ok := f.profiles[profile.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile.UserID = existing.UserID
	profile.Status = existing.Status
	profile.AssignedCollectorID = existing.AssignedCollectorID
	profile.CreatedAt = existing.CreatedAt
	f.profiles[profile.ID] = profile
	if appendHistory && profile.HasCoordinates() {
		f.appendHistory(profile.ID, *profile.Latitude, *profile.Longitude, changedBy)
	}
	return &profile, nil
}

func (f *fakeProfileStore) appendHistory(profileID uuid.UUID, lat, lng float64, changedBy uuid.UUID) {
	f.history = append(f.history, model.LocationHistory{
		ID:             uuid.New(),
		WasteProfileID: profileID,
		Latitude:       lat,
		Longitude:      lng,
		ChangedBy:      changedBy,
		ChangedAt:      f.tick(),
	})
}

func (f *fakeProfileStore) GetProfile(_ context.Context, id, userID uuid.UUID) (*model.WasteProfile, error) {
	profile, ok := f.profiles[id]
	if !ok || profile.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (f *fakeProfileStore) GetProfileByID(_ context.Context, id uuid.UUID) (*model.WasteProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (f *fakeProfileStore) ListProfiles(_ context.Context, userID uuid.UUID) ([]model.WasteProfile, error) {
	var out []model.WasteProfile
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) ListAssignedProfiles(_ context.Context, collectorID uuid.UUID) ([]model.WasteProfile, error) {
	var out []model.WasteProfile
	for _, profile := range f.profiles {
		if profile.AssignedCollectorID != nil && *profile.AssignedCollectorID == collectorID {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) ListGeolocatedProfiles(_ context.Context, userID uuid.UUID) ([]model.WasteProfile, error) {
	var out []model.WasteProfile
	for _, profile := range f.profiles {
		if profile.UserID == userID && profile.HasCoordinates() {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (f *fakeProfileStore) DeleteProfile(_ context.Context, id uuid.UUID) error {
	if _, ok := f.profiles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.profiles, id)
	kept := f.history[:0]
	for _, entry := range f.history {
		if entry.WasteProfileID != id {
			kept = append(kept, entry)
		}
	}
	f.history = kept
	return nil
}

func (f *fakeProfileStore) AssignCollector(_ context.Context, id, collectorID uuid.UUID) error {
	profile, ok := f.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	profile.AssignedCollectorID = &collectorID
	f.profiles[id] = profile
	return nil
}

func (f *fakeProfileStore) ListLocationHistory(_ context.Context, profileID uuid.UUID, limit int) ([]model.LocationHistory, error) {
	var out []model.LocationHistory
	for _, entry := range f.history {
		if entry.WasteProfileID == profileID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChangedAt.After(out[j].ChangedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProfileStore) historyFor(profileID uuid.UUID) []model.LocationHistory {
	history, _ := f.ListLocationHistory(context.Background(), profileID, 0)
	return history
}

type fakeScheduleStore struct {
	calendar   map[uuid.UUID]model.CalendarEntry
	selections map[uuid.UUID]model.PickupSelection
	replaceErr error
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{
		calendar:   make(map[uuid.UUID]model.CalendarEntry),
		selections: make(map[uuid.UUID]model.PickupSelection),
	}
}

func (f *fakeScheduleStore) addDate(localbodyID uuid.UUID, date time.Time) uuid.UUID {
	entry := model.CalendarEntry{ID: uuid.New(), LocalbodyID: localbodyID, Date: date}
	f.calendar[entry.ID] = entry
	return entry.ID
}

func (f *fakeScheduleStore) GetCalendarEntry(_ context.Context, id uuid.UUID) (*model.CalendarEntry, error) {
	entry, ok := f.calendar[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

func (f *fakeScheduleStore) ListCalendarEntries(_ context.Context, localbodyID uuid.UUID) ([]model.CalendarEntry, error) {
	var out []model.CalendarEntry
	for _, entry := range f.calendar {
		if entry.LocalbodyID == localbodyID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeScheduleStore) UpsertSelection(_ context.Context, userID, calendarID uuid.UUID) (bool, error) {
	_, existed := f.selections[userID]
	f.selections[userID] = model.PickupSelection{
		ID:         uuid.New(),
		UserID:     userID,
		CalendarID: calendarID,
	}
	return !existed, nil
}

func (f *fakeScheduleStore) ReplaceProfileSelection(_ context.Context, userID, profileID, calendarID uuid.UUID) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.selections[userID] = model.PickupSelection{
		ID:             uuid.New(),
		UserID:         userID,
		WasteProfileID: &profileID,
		CalendarID:     calendarID,
	}
	return nil
}

func (f *fakeScheduleStore) GetSelection(_ context.Context, userID uuid.UUID) (*model.PickupSelection, error) {
	selection, ok := f.selections[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &selection, nil
}

type fakeCollectionStore struct {
	collections map[uuid.UUID]model.WasteCollection
	clock       time.Time
}

func newFakeCollectionStore() *fakeCollectionStore {
	return &fakeCollectionStore{
		collections: make(map[uuid.UUID]model.WasteCollection),
		clock:       time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeCollectionStore) CreateCollection(_ context.Context, collection model.WasteCollection) (*model.WasteCollection, error) {
	collection.ID = uuid.New()
	f.clock = f.clock.Add(time.Minute)
	collection.CreatedAt = f.clock
	f.collections[collection.ID] = collection
	return &collection, nil
}

func (f *fakeCollectionStore) UpdateCollection(_ context.Context, collection model.WasteCollection) (*model.WasteCollection, error) {
	existing, ok := f.collections[collection.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	collection.CollectorID = existing.CollectorID
	collection.CreatedAt = existing.CreatedAt
	f.collections[collection.ID] = collection
	return &collection, nil
}

func (f *fakeCollectionStore) GetCollection(_ context.Context, id, collectorID uuid.UUID) (*model.WasteCollection, error) {
	collection, ok := f.collections[id]
	if !ok || collection.CollectorID != collectorID {
		return nil, gorm.ErrRecordNotFound
	}
	return &collection, nil
}

func (f *fakeCollectionStore) ListCollections(_ context.Context, collectorID uuid.UUID) ([]model.WasteCollection, error) {
	var out []model.WasteCollection
	for _, collection := range f.collections {
		if collection.CollectorID == collectorID {
			out = append(out, collection)
		}
	}
	return out, nil
}

func (f *fakeCollectionStore) DeleteCollection(_ context.Context, id, collectorID uuid.UUID) error {
	collection, ok := f.collections[id]
	if !ok || collection.CollectorID != collectorID {
		return gorm.ErrRecordNotFound
	}
	delete(f.collections, id)
	return nil
}

func (f *fakeCollectionStore) LocalbodyStats(_ context.Context, from, to time.Time) ([]model.LocalbodyStat, error) {
	grouped := make(map[string]*model.LocalbodyStat)
	for _, collection := range f.collections {
		if collection.CreatedAt.Before(from) || !collection.CreatedAt.Before(to) {
			continue
		}
		stat, ok := grouped[collection.Localbody]
		if !ok {
			stat = &model.LocalbodyStat{Localbody: collection.Localbody}
			grouped[collection.Localbody] = stat
		}
		stat.TotalWeightKG += collection.KG
		stat.TotalRevenue += collection.TotalAmount
		stat.CollectionCount++
	}

	out := make([]model.LocalbodyStat, 0, len(grouped))
	for _, stat := range grouped {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalRevenue > out[j].TotalRevenue })
	return out, nil
}

type fakeRateSource struct {
	rates       map[uuid.UUID]float64
	localbodies map[uuid.UUID]model.LocalBody
	lookupErr   error
}

func newFakeRateSource() *fakeRateSource {
	return &fakeRateSource{
		rates:       make(map[uuid.UUID]float64),
		localbodies: make(map[uuid.UUID]model.LocalBody),
	}
}

func (f *fakeRateSource) GetRate(_ context.Context, localbodyID uuid.UUID) (float64, bool, error) {
	if f.lookupErr != nil {
		return 0, false, f.lookupErr
	}
	rate, found := f.rates[localbodyID]
	return rate, found, nil
}

func (f *fakeRateSource) GetLocalBody(_ context.Context, id uuid.UUID) (*model.LocalBody, error) {
	localbody, ok := f.localbodies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &localbody, nil
}

type fakePhotoStore struct {
	saved   []string
	removed []string
	failing bool
	counter int
}

func (f *fakePhotoStore) Save(photoData string) (string, error) {
	if f.failing {
		return "", fmt.Errorf("disk full")
	}
	f.counter++
	path := fmt.Sprintf("photos/%d.jpg", f.counter)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakePhotoStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}
