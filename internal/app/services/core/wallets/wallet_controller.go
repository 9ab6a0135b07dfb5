package wallets

import (
	"encoding/json"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WalletController struct {
	Log           *zap.Logger
	WalletUsecase contracts.WalletUsecase
}

func NewWalletController(logger *zap.Logger, walletUsecase contracts.WalletUsecase) *WalletController {
	return &WalletController{
		Log:           logger,
		WalletUsecase: walletUsecase,
	}
}

func (ctrl *WalletController) TopUpWallet(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	request := new(requests.TopUpWallet)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.WalletUsecase.TopUp(r.Context(), staffID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TopUpWalletSuccessMessage, result)
}

func (ctrl *WalletController) GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	balance, err := ctrl.WalletUsecase.GetBalance(r.Context(), staffID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWalletBalanceSuccessMessage, balance)
}
