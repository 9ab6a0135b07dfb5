package companies

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

type CompanyController struct {
	Log            *zap.Logger
	CompanyUsecase contracts.CompanyUsecase
}

func NewCompanyController(logger *zap.Logger, companyUsecase contracts.CompanyUsecase) *CompanyController {
	return &CompanyController{
		Log:            logger,
		CompanyUsecase: companyUsecase,
	}
}

func (ctrl *CompanyController) CreateCompany(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCompany)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	company, err := ctrl.CompanyUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCompanySuccessMessage, company)
}

func (ctrl *CompanyController) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := ctrl.CompanyUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanySuccessMessage, companies)
}

func (ctrl *CompanyController) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	company, err := ctrl.CompanyUsecase.FindByID(r.Context(), companyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanySuccessMessage, company)
}

func (ctrl *CompanyController) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	request := new(requests.UpdateCompany)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	company, err := ctrl.CompanyUsecase.Update(r.Context(), companyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCompanySuccessMessage, company)
}

func (ctrl *CompanyController) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	if err := ctrl.CompanyUsecase.Delete(r.Context(), companyID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCompanySuccessMessage, nil)
}
