package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/staffs"
	"medibook-service/internal/app/services/core/wallets"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *staffs.StaffController, walletController *wallets.WalletController) {
	router.With(middlewares.Authentication).Post("/", staffController.CreateStaff)
	router.With(middlewares.Authentication).Get("/{staffID}", staffController.GetStaff)
	router.With(middlewares.Authentication).Get("/company/{companyID}", staffController.GetStaffsByCompany)
	router.With(middlewares.Authentication).Put("/{staffID}", staffController.UpdateStaff)
	router.With(middlewares.Authentication).Delete("/{staffID}", staffController.DeleteStaff)

	router.With(middlewares.Authentication).Post("/{staffID}/wallet/topup", walletController.TopUpWallet)
	router.With(middlewares.Authentication).Get("/{staffID}/wallet", walletController.GetWalletBalance)
}
