package diagnostics

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

type DiagnosticController struct {
	Log               *zap.Logger
	DiagnosticUsecase contracts.DiagnosticUsecase
}

func NewDiagnosticController(logger *zap.Logger, diagnosticUsecase contracts.DiagnosticUsecase) *DiagnosticController {
	return &DiagnosticController{
		Log:               logger,
		DiagnosticUsecase: diagnosticUsecase,
	}
}

func (ctrl *DiagnosticController) CreateDiagnostic(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDiagnostic)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	diagnostic, err := ctrl.DiagnosticUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDiagnosticSuccessMessage, diagnostic)
}

func (ctrl *DiagnosticController) GetDiagnostics(w http.ResponseWriter, r *http.Request) {
	diagnostics, err := ctrl.DiagnosticUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosticSuccessMessage, diagnostics)
}

func (ctrl *DiagnosticController) GetDiagnostic(w http.ResponseWriter, r *http.Request) {
	diagnosticID := chi.URLParam(r, "diagnosticID")

	diagnostic, err := ctrl.DiagnosticUsecase.FindByID(r.Context(), diagnosticID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosticSuccessMessage, diagnostic)
}

func (ctrl *DiagnosticController) UpdateDiagnostic(w http.ResponseWriter, r *http.Request) {
	diagnosticID := chi.URLParam(r, "diagnosticID")

	request := new(requests.UpdateDiagnostic)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	diagnostic, err := ctrl.DiagnosticUsecase.Update(r.Context(), diagnosticID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDiagnosticSuccessMessage, diagnostic)
}

func (ctrl *DiagnosticController) DeleteDiagnostic(w http.ResponseWriter, r *http.Request) {
	diagnosticID := chi.URLParam(r, "diagnosticID")

	if err := ctrl.DiagnosticUsecase.Delete(r.Context(), diagnosticID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDiagnosticSuccessMessage, nil)
}
