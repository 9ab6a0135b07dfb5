package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// SlotRepository mutates slot arrays embedded in doctor and diagnostic
// documents. resourceType selects the collection (doctor|diagnostic) and
// slotType the array field (online|offline for doctors, home|center for
// diagnostics). Slots are addressed by their (day, date, timeSlot) tuple.
type SlotRepository interface {
	AddSlot(ctx context.Context, resourceType, resourceID, slotType string, slot models.Slot) error
	MarkBooked(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error
	Release(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error
	RemoveSlot(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string) error
	UpdateSlot(ctx context.Context, resourceType, resourceID, slotType, day, date, timeSlot string, newSlot models.Slot) error
	ListSlots(ctx context.Context, resourceType, resourceID, slotType string) ([]models.Slot, error)
}

type SlotUsecase interface {
	AddSlot(ctx context.Context, resourceType, resourceID string, request *requests.AddSlot) error
	RemoveSlot(ctx context.Context, resourceType, resourceID string, request *requests.RemoveSlot) error
	UpdateSlot(ctx context.Context, resourceType, resourceID string, request *requests.UpdateSlot) error
	QuerySlotsByDate(ctx context.Context, resourceType, resourceID, date, slotType string) (*responses.SlotsByDate, error)
}
