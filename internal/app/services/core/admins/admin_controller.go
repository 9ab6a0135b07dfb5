package admins

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

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAdmin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	admin, err := ctrl.AdminUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAdminSuccessMessage, admin)
}

func (ctrl *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AdminLogin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.AdminUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AdminController) GetAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	admin, err := ctrl.AdminUsecase.FindByID(r.Context(), adminID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdminSuccessMessage, admin)
}

func (ctrl *AdminController) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	request := new(requests.UpdateAdmin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	admin, err := ctrl.AdminUsecase.Update(r.Context(), adminID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAdminSuccessMessage, admin)
}

func (ctrl *AdminController) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	if err := ctrl.AdminUsecase.Delete(r.Context(), adminID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAdminSuccessMessage, nil)
}
