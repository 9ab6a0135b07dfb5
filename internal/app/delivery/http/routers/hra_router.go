package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/hra"

	"github.com/go-chi/chi/v5"
)

func attachHraRoutes(router chi.Router, middlewares *middlewares.Middlewares, hraController *hra.HraController) {
	router.With(middlewares.Authentication).Post("/", hraController.CreateQuestionnaire)
	router.Get("/", hraController.GetQuestionnaires)
	router.Get("/{questionnaireID}", hraController.GetQuestionnaire)
	router.With(middlewares.Authentication).Delete("/{questionnaireID}", hraController.DeleteQuestionnaire)
	router.Post("/{questionnaireID}/responses", hraController.SubmitResponse)
}
