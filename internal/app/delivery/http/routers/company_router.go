package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/companies"

	"github.com/go-chi/chi/v5"
)

func attachCompanyRoutes(router chi.Router, middlewares *middlewares.Middlewares, companyController *companies.CompanyController) {
	router.With(middlewares.Authentication).Post("/", companyController.CreateCompany)
	router.With(middlewares.Authentication).Get("/", companyController.GetCompanies)
	router.With(middlewares.Authentication).Get("/{companyID}", companyController.GetCompany)
	router.With(middlewares.Authentication).Put("/{companyID}", companyController.UpdateCompany)
	router.With(middlewares.Authentication).Delete("/{companyID}", companyController.DeleteCompany)
}
