package slots

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	contracts.SlotRepository
	slots       []models.Slot
	slotsByType map[string][]models.Slot
	added       []models.Slot
	updated     []models.Slot
}

func (f *fakeSlotRepository) AddSlot(ctx context.Context, resourceType, resourceID, slotType string, slot models.Slot) error {
	f.added = append(f.added, slot)
	return nil
}

func (f *fakeSlotRepository) ListSlots(ctx context.Context, resourceType, resourceID, slotType string) ([]models.Slot, error) {
	if f.slotsByType != nil {
		return f.slotsByType[slotType], nil
	}
	return f.slots, nil
}

func (f *fakeSlotRepository) UpdateSlot(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string, newSlot models.Slot) error {
	f.updated = append(f.updated, newSlot)
	return nil
}

func newSlotUsecaseUnderTest(existing []models.Slot) (*slotUsecase, *fakeSlotRepository) {
	repo := &fakeSlotRepository{slots: existing}
	return &slotUsecase{SlotRepository: repo, Log: zap.NewNop()}, repo
}

func TestAddSlot_NewSlotsStartOpen(t *testing.T) {
	uc, repo := newSlotUsecaseUnderTest(nil)

	err := uc.AddSlot(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", &requests.AddSlot{
		SlotType: constvars.SlotTypeOnline,
		Day:      "Monday",
		Date:     "2026-09-07",
		TimeSlot: "10:00-10:30",
	})

	assert.NoError(t, err)
	assert.Len(t, repo.added, 1)
	assert.False(t, repo.added[0].IsBooked)
	assert.Equal(t, "2026-09-07", repo.added[0].Date)
}

func TestUpdateSlot_PreservesBookingState(t *testing.T) {
	uc, repo := newSlotUsecaseUnderTest([]models.Slot{
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "10:00-10:30", IsBooked: true},
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "11:00-11:30"},
	})

	err := uc.UpdateSlot(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", &requests.UpdateSlot{
		SlotType:    constvars.SlotTypeOnline,
		Day:         "Monday",
		Date:        "2026-09-07",
		TimeSlot:    "10:00-10:30",
		NewDay:      "Tuesday",
		NewDate:     "2026-09-08",
		NewTimeSlot: "09:00-09:30",
	})

	assert.NoError(t, err)
	assert.Len(t, repo.updated, 1)
	assert.True(t, repo.updated[0].IsBooked, "reschedule must carry booking state over")
	assert.Equal(t, "2026-09-08", repo.updated[0].Date)
}

func TestUpdateSlot_RejectsDuplicateTarget(t *testing.T) {
	uc, repo := newSlotUsecaseUnderTest([]models.Slot{
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "10:00-10:30"},
		{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "09:00-09:30"},
	})

	err := uc.UpdateSlot(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", &requests.UpdateSlot{
		SlotType:    constvars.SlotTypeOnline,
		Day:         "Monday",
		Date:        "2026-09-07",
		TimeSlot:    "10:00-10:30",
		NewDay:      "Tuesday",
		NewDate:     "2026-09-08",
		NewTimeSlot: "09:00-09:30",
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Empty(t, repo.updated)
}

func TestUpdateSlot_MissingSource(t *testing.T) {
	uc, repo := newSlotUsecaseUnderTest([]models.Slot{
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "10:00-10:30"},
	})

	err := uc.UpdateSlot(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", &requests.UpdateSlot{
		SlotType:    constvars.SlotTypeOnline,
		Day:         "Friday",
		Date:        "2026-09-11",
		TimeSlot:    "10:00-10:30",
		NewDay:      "Tuesday",
		NewDate:     "2026-09-08",
		NewTimeSlot: "09:00-09:30",
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Empty(t, repo.updated)
}

func TestQuerySlotsByDate_SortsByTimeSlot(t *testing.T) {
	uc, _ := newSlotUsecaseUnderTest([]models.Slot{
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "14:00-14:30"},
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "09:00-09:30", IsBooked: true},
		{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "10:00-10:30"},
	})

	result, err := uc.QuerySlotsByDate(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", "2026-09-07", constvars.SlotTypeOnline)

	assert.NoError(t, err)
	assert.Len(t, result.Slots, 2)
	assert.Equal(t, "09:00-09:30", result.Slots[0].TimeSlot)
	assert.Equal(t, "14:00-14:30", result.Slots[1].TimeSlot)
	assert.Empty(t, result.KnownDates, "hint is only for empty results")
}

func TestQuerySlotsByDate_OmittedSlotTypeMergesBothArrays(t *testing.T) {
	repo := &fakeSlotRepository{slotsByType: map[string][]models.Slot{
		constvars.SlotTypeOnline: {
			{Day: "Monday", Date: "2026-09-07", TimeSlot: "14:00-14:30"},
		},
		constvars.SlotTypeOffline: {
			{Day: "Monday", Date: "2026-09-07", TimeSlot: "09:00-09:30", IsBooked: true},
			{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "10:00-10:30"},
		},
	}}
	uc := &slotUsecase{SlotRepository: repo, Log: zap.NewNop()}

	result, err := uc.QuerySlotsByDate(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", "2026-09-07", "")

	assert.NoError(t, err)
	assert.Len(t, result.Slots, 2)
	assert.Equal(t, "09:00-09:30", result.Slots[0].TimeSlot)
	assert.Equal(t, "14:00-14:30", result.Slots[1].TimeSlot)
}

func TestQuerySlotsByDate_EmptyDateReturnsKnownDatesHint(t *testing.T) {
	uc, _ := newSlotUsecaseUnderTest([]models.Slot{
		{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "10:00-10:30"},
		{Day: "Monday", Date: "2026-09-07", TimeSlot: "09:00-09:30"},
		{Day: "Tuesday", Date: "2026-09-08", TimeSlot: "11:00-11:30"},
	})

	result, err := uc.QuerySlotsByDate(context.Background(), constvars.BookingTypeDoctor, "64b000000000000000000d0c", "2026-09-14", constvars.SlotTypeOnline)

	assert.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, []string{"2026-09-07", "2026-09-08"}, result.KnownDates)
}
