package staffs

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

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase contracts.StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

func (ctrl *StaffController) CreateStaff(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateStaff)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	staff, err := ctrl.StaffUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessMessage, staff)
}

func (ctrl *StaffController) GetStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	staff, err := ctrl.StaffUsecase.FindByID(r.Context(), staffID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessMessage, staff)
}

func (ctrl *StaffController) GetStaffsByCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	staffs, err := ctrl.StaffUsecase.FindByCompany(r.Context(), companyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessMessage, staffs)
}

func (ctrl *StaffController) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	request := new(requests.UpdateStaff)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	staff, err := ctrl.StaffUsecase.Update(r.Context(), staffID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStaffSuccessMessage, staff)
}

func (ctrl *StaffController) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	if err := ctrl.StaffUsecase.Delete(r.Context(), staffID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteStaffSuccessMessage, nil)
}
