package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/diagnostics"
	"medibook-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosticRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosticController *diagnostics.DiagnosticController, slotController *slots.SlotController) {
	router.With(middlewares.Authentication).Post("/", diagnosticController.CreateDiagnostic)
	router.Get("/", diagnosticController.GetDiagnostics)
	router.Get("/{diagnosticID}", diagnosticController.GetDiagnostic)
	router.With(middlewares.Authentication).Put("/{diagnosticID}", diagnosticController.UpdateDiagnostic)
	router.With(middlewares.Authentication).Delete("/{diagnosticID}", diagnosticController.DeleteDiagnostic)

	router.With(middlewares.Authentication).Post("/{diagnosticID}/slots", slotController.AddSlot)
	router.Get("/{diagnosticID}/slots", slotController.QuerySlots)
	router.With(middlewares.Authentication).Put("/{diagnosticID}/slots", slotController.UpdateSlot)
	router.With(middlewares.Authentication).Delete("/{diagnosticID}/slots", slotController.RemoveSlot)
}
