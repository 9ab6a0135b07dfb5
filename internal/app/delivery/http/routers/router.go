package routers

import (
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/admins"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/catalog"
	"medibook-service/internal/app/services/core/companies"
	"medibook-service/internal/app/services/core/diagnostics"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/hra"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/app/services/core/staffs"
	"medibook-service/internal/app/services/core/wallets"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Admin      *admins.AdminController
	Staff      *staffs.StaffController
	Wallet     *wallets.WalletController
	Company    *companies.CompanyController
	Doctor     *doctors.DoctorController
	Diagnostic *diagnostics.DiagnosticController
	Catalog    *catalog.CatalogController
	Slot       *slots.SlotController
	Booking    *bookings.BookingController
	Hra        *hra.HraController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/admins", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, controllers.Admin)
			})

			r.Route("/staffs", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, controllers.Staff, controllers.Wallet)
			})

			r.Route("/companies", func(r chi.Router) {
				attachCompanyRoutes(r, middlewares, controllers.Company)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, controllers.Doctor, controllers.Slot)
			})

			r.Route("/diagnostics", func(r chi.Router) {
				attachDiagnosticRoutes(r, middlewares, controllers.Diagnostic, controllers.Slot)
			})

			r.Route("/catalog", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, controllers.Catalog)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, controllers.Booking)
			})

			r.Route("/questionnaires", func(r chi.Router) {
				attachHraRoutes(r, middlewares, controllers.Hra)
			})
		})
	})
}
