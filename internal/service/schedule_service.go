package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type ScheduleStore interface {
	GetCalendarEntry(ctx context.Context, id uuid.UUID) (*model.CalendarEntry, error)
	ListCalendarEntries(ctx context.Context, localbodyID uuid.UUID) ([]model.CalendarEntry, error)
	UpsertSelection(ctx context.Context, userID, calendarID uuid.UUID) (created bool, err error)
	GetSelection(ctx context.Context, userID uuid.UUID) (*model.PickupSelection, error)
}

type ScheduleService struct {
	store ScheduleStore
}

func NewScheduleService(store ScheduleStore) *ScheduleService {
	return &ScheduleService{store: store}
}

// AvailableDate mirrors the calendar feed the pickup form consumes.
// Every listed entry is selectable; the calendar has no capacity
// concept, so the title is always "Available".
type AvailableDate struct {
	ID    uuid.UUID `json:"id"`
	Date  string    `json:"date"`
	Title string    `json:"title"`
}

func (s *ScheduleService) AvailableDates(ctx context.Context, principal model.Principal, localbodyID uuid.UUID) ([]AvailableDate, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	entries, err := s.store.ListCalendarEntries(ctx, localbodyID)
	if err != nil {
		return nil, err
	}

	dates := make([]AvailableDate, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, AvailableDate{
			ID:    entry.ID,
			Date:  entry.Date.Format(time.DateOnly),
			Title: "Available",
		})
	}
	return dates, nil
}

// SaveSelection creates or replaces the customer's pickup date. An
// unresolvable calendar id rejects the transition and leaves any prior
// selection untouched.
func (s *ScheduleService) SaveSelection(ctx context.Context, principal model.Principal, calendarID uuid.UUID) (created bool, err error) {
	if !principal.IsCustomer() {
		return false, ErrPermissionDenied
	}

	entry, err := s.store.GetCalendarEntry(ctx, calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrInvalidPickupDate
		}
		return false, err
	}

	return s.store.UpsertSelection(ctx, principal.UserID, entry.ID)
}

func (s *ScheduleService) CurrentSelection(ctx context.Context, principal model.Principal) (*model.PickupSelection, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	selection, err := s.store.GetSelection(ctx, principal.UserID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return selection, nil
}
