package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Route("/tests", func(r chi.Router) {
		r.With(middlewares.Authentication).Post("/", catalogController.CreateTest)
		r.Get("/{testID}", catalogController.GetTest)
		r.Get("/category/{categoryID}", catalogController.GetTestsByCategory)
		r.With(middlewares.Authentication).Put("/{testID}", catalogController.UpdateTest)
		r.With(middlewares.Authentication).Delete("/{testID}", catalogController.DeleteTest)
	})

	router.Route("/packages", func(r chi.Router) {
		r.With(middlewares.Authentication).Post("/", catalogController.CreatePackage)
		r.Get("/", catalogController.GetPackages)
		r.Get("/{packageID}", catalogController.GetPackage)
		r.With(middlewares.Authentication).Put("/{packageID}", catalogController.UpdatePackage)
		r.With(middlewares.Authentication).Delete("/{packageID}", catalogController.DeletePackage)
	})

	router.Route("/xrays", func(r chi.Router) {
		r.With(middlewares.Authentication).Post("/", catalogController.CreateXray)
		r.Get("/{xrayID}", catalogController.GetXray)
		r.With(middlewares.Authentication).Put("/{xrayID}", catalogController.UpdateXray)
		r.With(middlewares.Authentication).Delete("/{xrayID}", catalogController.DeleteXray)
	})

	router.Route("/categories", func(r chi.Router) {
		r.With(middlewares.Authentication).Post("/", catalogController.CreateCategory)
		r.Get("/", catalogController.GetCategories)
		r.With(middlewares.Authentication).Delete("/{categoryID}", catalogController.DeleteCategory)
	})
}
