package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteByID(ctx context.Context, bookingID string) error
	// LatestBookingID returns the human booking id of the most recently
	// created booking of the given type, or "" when none exist. Used once
	// at startup to seed the sequence counters.
	LatestBookingID(ctx context.Context, bookingType string) (string, error)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingSettlement, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	RemoveTest(ctx context.Context, bookingID, testID string) (*models.Booking, error)
	Delete(ctx context.Context, bookingID string) error
}
