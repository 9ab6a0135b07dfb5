package slots

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository contracts.SlotRepository
	Log            *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(slotRepository contracts.SlotRepository, logger *zap.Logger) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository: slotRepository,
			Log:            logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) AddSlot(ctx context.Context, resourceType, resourceID string, request *requests.AddSlot) error {
	uc.Log.Info("slotUsecase.AddSlot called",
		zap.String(constvars.LoggingResourceIDKey, resourceID),
		zap.String(constvars.LoggingSlotTypeKey, request.SlotType),
		zap.String(constvars.LoggingSlotKey, fmt.Sprintf("%s %s %s", request.Day, request.Date, request.TimeSlot)),
	)

	slot := models.Slot{
		Day:      request.Day,
		Date:     request.Date,
		TimeSlot: request.TimeSlot,
		IsBooked: false,
	}
	return uc.SlotRepository.AddSlot(ctx, resourceType, resourceID, request.SlotType, slot)
}

func (uc *slotUsecase) RemoveSlot(ctx context.Context, resourceType, resourceID string, request *requests.RemoveSlot) error {
	return uc.SlotRepository.RemoveSlot(ctx, resourceType, resourceID, request.SlotType, request.Day, request.Date, request.TimeSlot)
}

func (uc *slotUsecase) UpdateSlot(ctx context.Context, resourceType, resourceID string, request *requests.UpdateSlot) error {
	// Booking state survives a reschedule.
	current, err := uc.SlotRepository.ListSlots(ctx, resourceType, resourceID, request.SlotType)
	if err != nil {
		return err
	}
	newSlot := models.Slot{
		Day:      request.NewDay,
		Date:     request.NewDate,
		TimeSlot: request.NewTimeSlot,
	}
	found := false
	for _, slot := range current {
		if slot.SameTuple(request.Day, request.Date, request.TimeSlot) {
			newSlot.IsBooked = slot.IsBooked
			found = true
			continue
		}
		if slot.SameTuple(request.NewDay, request.NewDate, request.NewTimeSlot) {
			return exceptions.ErrSlotDuplicate(fmt.Errorf("slot %s %s %s already exists", request.NewDay, request.NewDate, request.NewTimeSlot))
		}
	}
	if !found {
		return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s %s %s", request.Day, request.Date, request.TimeSlot))
	}
	return uc.SlotRepository.UpdateSlot(ctx, resourceType, resourceID, request.SlotType, request.Day, request.Date, request.TimeSlot, newSlot)
}

// QuerySlotsByDate returns every slot on the requested date. An empty
// slotType queries both arrays of the resource. When the date has no slots
// at all, the distinct known dates are returned as a hint.
func (uc *slotUsecase) QuerySlotsByDate(ctx context.Context, resourceType, resourceID, date, slotType string) (*responses.SlotsByDate, error) {
	slotTypes := []string{slotType}
	if slotType == "" {
		var err error
		slotTypes, err = slotTypesFor(resourceType)
		if err != nil {
			return nil, err
		}
	}

	slots := make([]models.Slot, 0)
	for _, listType := range slotTypes {
		listed, err := uc.SlotRepository.ListSlots(ctx, resourceType, resourceID, listType)
		if err != nil {
			return nil, err
		}
		slots = append(slots, listed...)
	}

	matched := make([]models.Slot, 0)
	for _, slot := range slots {
		if slot.Date == date {
			matched = append(matched, slot)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TimeSlot < matched[j].TimeSlot
	})

	response := &responses.SlotsByDate{
		Date:  date,
		Slots: matched,
	}
	if len(matched) == 0 {
		response.KnownDates = distinctDates(slots)
	}
	return response, nil
}

func slotTypesFor(resourceType string) ([]string, error) {
	switch resourceType {
	case constvars.BookingTypeDoctor:
		return []string{constvars.SlotTypeOnline, constvars.SlotTypeOffline}, nil
	case constvars.BookingTypeDiagnostic:
		return []string{constvars.SlotTypeHome, constvars.SlotTypeCenter}, nil
	}
	return nil, exceptions.ErrSlotInvalidType(fmt.Errorf("resource type %q", resourceType))
}

func distinctDates(slots []models.Slot) []string {
	seen := make(map[string]struct{}, len(slots))
	dates := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot.Date]; ok {
			continue
		}
		seen[slot.Date] = struct{}{}
		dates = append(dates, slot.Date)
	}
	sort.Strings(dates)
	return dates
}
