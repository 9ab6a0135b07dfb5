package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/admins"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admins.AdminController) {
	router.Post("/login", adminController.Login)
	router.With(middlewares.Authentication).Post("/", adminController.CreateAdmin)
	router.With(middlewares.Authentication).Get("/{adminID}", adminController.GetAdmin)
	router.With(middlewares.Authentication).Put("/{adminID}", adminController.UpdateAdmin)
	router.With(middlewares.Authentication).Delete("/{adminID}", adminController.DeleteAdmin)
}
