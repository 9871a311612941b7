package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type profileFixtures struct {
	service  *ProfileService
	profiles *fakeProfileStore
	schedule *fakeScheduleStore
	customer model.Principal
}

func newProfileFixtures() profileFixtures {
	profiles := newFakeProfileStore()
	schedule := newFakeScheduleStore()
	return profileFixtures{
		service:  NewProfileService(profiles, schedule),
		profiles: profiles,
		schedule: schedule,
		customer: model.Principal{UserID: uuid.New(), Role: model.RoleCustomer},
	}
}

func validProfileInput() ProfileInput {
	return ProfileInput{
		FullName:      "Anand Kumar",
		PickupAddress: "12B, Temple Road",
		StateID:       uuid.New(),
		DistrictID:    uuid.New(),
		LocalbodyID:   uuid.New(),
		Ward:          "7",
		NumberOfBags:  3,
		WasteType:     "organic",
	}
}

func TestProfileCreateWithCoordinatesWritesOneHistoryEntry(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "10.5"
	input.LongitudeRaw = "76.2"

	result, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)
	require.True(t, result.Profile.HasCoordinates())
	assert.Equal(t, 10.5, *result.Profile.Latitude)
	assert.Equal(t, 76.2, *result.Profile.Longitude)

	history := fx.profiles.historyFor(result.Profile.ID)
	require.Len(t, history, 1)
	assert.Equal(t, 10.5, history[0].Latitude)
	assert.Equal(t, 76.2, history[0].Longitude)
	assert.Equal(t, fx.customer.UserID, history[0].ChangedBy)
}

func TestProfileCreateWithoutCoordinatesWritesNoHistory(t *testing.T) {
	fx := newProfileFixtures()

	result, err := fx.service.Create(context.Background(), fx.customer, validProfileInput())
	require.NoError(t, err)
	assert.False(t, result.Profile.HasCoordinates())
	assert.Empty(t, fx.profiles.historyFor(result.Profile.ID))
}

func TestProfileCreateDegradesInvalidCoordinatesToAbsence(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "95.0"
	input.LongitudeRaw = "76.2"

	result, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)
	assert.False(t, result.Profile.HasCoordinates())
	assert.Empty(t, fx.profiles.historyFor(result.Profile.ID))
}

func TestProfileCreateWithPickupDate(t *testing.T) {
	fx := newProfileFixtures()
	localbodyID := uuid.New()
	dateID := fx.schedule.addDate(localbodyID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	input := validProfileInput()
	input.SelectedDateID = &dateID

	result, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)
	assert.Empty(t, result.ScheduleWarning)

	selection, err := fx.schedule.GetSelection(context.Background(), fx.customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, dateID, selection.CalendarID)
	require.NotNil(t, selection.WasteProfileID)
	assert.Equal(t, result.Profile.ID, *selection.WasteProfileID)
}

func TestProfileCreateWithUnresolvablePickupDateStillCommits(t *testing.T) {
	fx := newProfileFixtures()
	missing := uuid.New()

	input := validProfileInput()
	input.SelectedDateID = &missing

	result, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ScheduleWarning)

	// Profile committed despite the scheduling failure.
	_, err = fx.profiles.GetProfile(context.Background(), result.Profile.ID, fx.customer.UserID)
	assert.NoError(t, err)
	_, err = fx.schedule.GetSelection(context.Background(), fx.customer.UserID)
	assert.Error(t, err)
}

func TestProfileCreateSelectionStoreFailureGetsDistinctWarning(t *testing.T) {
	fx := newProfileFixtures()
	localbodyID := uuid.New()
	dateID := fx.schedule.addDate(localbodyID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	fx.schedule.replaceErr = assert.AnError

	input := validProfileInput()
	input.SelectedDateID = &dateID

	result, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ScheduleWarning)
	// A store failure reads differently from a bad calendar id.
	assert.NotEqual(t, ErrInvalidPickupDate.Error(), result.ScheduleWarning)

	_, err = fx.profiles.GetProfile(context.Background(), result.Profile.ID, fx.customer.UserID)
	assert.NoError(t, err)
}

func TestProfileCreateRejectsNonCustomer(t *testing.T) {
	fx := newProfileFixtures()
	collector := model.Principal{UserID: uuid.New(), Role: model.RoleCollector}

	_, err := fx.service.Create(context.Background(), collector, validProfileInput())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestProfileUpdateUnchangedCoordinatesAppendNothing(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "10.5"
	input.LongitudeRaw = "76.2"
	created, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)

	_, err = fx.service.Update(context.Background(), fx.customer, created.Profile.ID, input)
	require.NoError(t, err)
	assert.Len(t, fx.profiles.historyFor(created.Profile.ID), 1)
}

func TestProfileUpdateChangedCoordinatesAppendOneEntry(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "10.5"
	input.LongitudeRaw = "76.2"
	created, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)

	input.LatitudeRaw = "11.0"
	_, err = fx.service.Update(context.Background(), fx.customer, created.Profile.ID, input)
	require.NoError(t, err)

	history := fx.profiles.historyFor(created.Profile.ID)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, 11.0, history[0].Latitude)
	assert.Equal(t, 10.5, history[1].Latitude)
}

func TestProfileUpdateReplacesPickupSelection(t *testing.T) {
	fx := newProfileFixtures()
	localbodyID := uuid.New()
	dateA := fx.schedule.addDate(localbodyID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	dateB := fx.schedule.addDate(localbodyID, time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC))

	input := validProfileInput()
	input.SelectedDateID = &dateA
	created, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)

	input.SelectedDateID = &dateB
	_, err = fx.service.Update(context.Background(), fx.customer, created.Profile.ID, input)
	require.NoError(t, err)

	require.Len(t, fx.schedule.selections, 1)
	selection, err := fx.schedule.GetSelection(context.Background(), fx.customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, dateB, selection.CalendarID)
}

func TestProfileUpdateByNonOwnerLooksLikeMissing(t *testing.T) {
	fx := newProfileFixtures()
	created, err := fx.service.Create(context.Background(), fx.customer, validProfileInput())
	require.NoError(t, err)

	stranger := model.Principal{UserID: uuid.New(), Role: model.RoleCustomer}
	_, err = fx.service.Update(context.Background(), stranger, created.Profile.ID, validProfileInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileGetReturnsFiveNewestHistoryEntries(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "10.0"
	input.LongitudeRaw = "76.0"
	created, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)

	// Six more moves, seven entries total.
	for i := 1; i <= 6; i++ {
		input.LatitudeRaw = "10." + string(rune('0'+i))
		_, err = fx.service.Update(context.Background(), fx.customer, created.Profile.ID, input)
		require.NoError(t, err)
	}

	detail, err := fx.service.Get(context.Background(), fx.customer, created.Profile.ID)
	require.NoError(t, err)
	require.Len(t, detail.RecentLocations, 5)
	assert.Equal(t, 10.6, detail.RecentLocations[0].Latitude)
}

func TestProfileDeleteCascadesHistory(t *testing.T) {
	fx := newProfileFixtures()

	input := validProfileInput()
	input.LatitudeRaw = "10.5"
	input.LongitudeRaw = "76.2"
	created, err := fx.service.Create(context.Background(), fx.customer, input)
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), fx.customer, created.Profile.ID))
	assert.Empty(t, fx.profiles.historyFor(created.Profile.ID))

	err = fx.service.Delete(context.Background(), fx.customer, created.Profile.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileListScopesByRole(t *testing.T) {
	fx := newProfileFixtures()
	created, err := fx.service.Create(context.Background(), fx.customer, validProfileInput())
	require.NoError(t, err)

	other := model.Principal{UserID: uuid.New(), Role: model.RoleCustomer}
	mine, err := fx.service.List(context.Background(), fx.customer)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := fx.service.List(context.Background(), other)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	collector := model.Principal{UserID: uuid.New(), Role: model.RoleCollector}
	admin := model.Principal{UserID: uuid.New(), Role: model.RoleAdmin}
	require.NoError(t, fx.service.AssignCollector(context.Background(), admin, created.Profile.ID, collector.UserID))

	assigned, err := fx.service.List(context.Background(), collector)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, created.Profile.ID, assigned[0].ID)
}

func TestAssignCollectorRequiresAdmin(t *testing.T) {
	fx := newProfileFixtures()
	created, err := fx.service.Create(context.Background(), fx.customer, validProfileInput())
	require.NoError(t, err)

	collector := model.Principal{UserID: uuid.New(), Role: model.RoleCollector}
	err = fx.service.AssignCollector(context.Background(), collector, created.Profile.ID, collector.UserID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = fx.service.AssignCollector(context.Background(), fx.customer, created.Profile.ID, collector.UserID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExportLocationsReturnsOnlyGeolocatedProfiles(t *testing.T) {
	fx := newProfileFixtures()

	withCoords := validProfileInput()
	withCoords.LatitudeRaw = "10.5"
	withCoords.LongitudeRaw = "76.2"
	_, err := fx.service.Create(context.Background(), fx.customer, withCoords)
	require.NoError(t, err)
	_, err = fx.service.Create(context.Background(), fx.customer, validProfileInput())
	require.NoError(t, err)

	exported, err := fx.service.ExportLocations(context.Background(), fx.customer)
	require.NoError(t, err)
	require.Len(t, exported, 1)
	assert.True(t, exported[0].HasCoordinates())
}

func TestProfileValidationErrors(t *testing.T) {
	fx := newProfileFixtures()

	missingName := validProfileInput()
	missingName.FullName = "  "
	_, err := fx.service.Create(context.Background(), fx.customer, missingName)
	assert.ErrorIs(t, err, ErrInvalidInput)

	zeroBags := validProfileInput()
	zeroBags.NumberOfBags = 0
	_, err = fx.service.Create(context.Background(), fx.customer, zeroBags)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noLocality := validProfileInput()
	noLocality.LocalbodyID = uuid.Nil
	_, err = fx.service.Create(context.Background(), fx.customer, noLocality)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
