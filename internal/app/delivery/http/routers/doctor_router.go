package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController, slotController *slots.SlotController) {
	router.With(middlewares.Authentication).Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.GetDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctor)
	router.With(middlewares.Authentication).Put("/{doctorID}", doctorController.UpdateDoctor)
	router.With(middlewares.Authentication).Delete("/{doctorID}", doctorController.DeleteDoctor)

	router.With(middlewares.Authentication).Post("/{doctorID}/slots", slotController.AddSlot)
	router.Get("/{doctorID}/slots", slotController.QuerySlots)
	router.With(middlewares.Authentication).Put("/{doctorID}/slots", slotController.UpdateSlot)
	router.With(middlewares.Authentication).Delete("/{doctorID}/slots", slotController.RemoveSlot)
}
