package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authentication).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authentication).Get("/", bookingController.GetBookings)
	router.With(middlewares.Authentication).Get("/{bookingID}", bookingController.GetBooking)
	router.With(middlewares.Authentication).Patch("/{bookingID}/status", bookingController.UpdateBookingStatus)
	router.With(middlewares.Authentication).Patch("/{bookingID}/tests/remove", bookingController.RemoveTestFromBooking)
	router.With(middlewares.Authentication).Delete("/{bookingID}", bookingController.DeleteBooking)
}
