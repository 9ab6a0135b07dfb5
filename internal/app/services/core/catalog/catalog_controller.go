package catalog

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

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) CreateTest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	test, err := ctrl.CatalogUsecase.CreateTest(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCatalogItemSuccessMessage, test)
}

func (ctrl *CatalogController) GetTest(w http.ResponseWriter, r *http.Request) {
	testID := chi.URLParam(r, "testID")

	test, err := ctrl.CatalogUsecase.FindTestByID(r.Context(), testID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, test)
}

func (ctrl *CatalogController) GetTestsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	tests, err := ctrl.CatalogUsecase.FindTestsByCategory(r.Context(), categoryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, tests)
}

func (ctrl *CatalogController) UpdateTest(w http.ResponseWriter, r *http.Request) {
	testID := chi.URLParam(r, "testID")

	request := new(requests.UpdateCatalogItem)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	test, err := ctrl.CatalogUsecase.UpdateTest(r.Context(), testID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCatalogItemSuccessMessage, test)
}

func (ctrl *CatalogController) DeleteTest(w http.ResponseWriter, r *http.Request) {
	testID := chi.URLParam(r, "testID")

	if err := ctrl.CatalogUsecase.DeleteTest(r.Context(), testID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCatalogItemSuccessMessage, nil)
}

func (ctrl *CatalogController) CreatePackage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePackage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	pkg, err := ctrl.CatalogUsecase.CreatePackage(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCatalogItemSuccessMessage, pkg)
}

func (ctrl *CatalogController) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := ctrl.CatalogUsecase.FindAllPackages(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, packages)
}

func (ctrl *CatalogController) GetPackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "packageID")

	pkg, err := ctrl.CatalogUsecase.FindPackageByID(r.Context(), packageID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, pkg)
}

func (ctrl *CatalogController) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "packageID")

	request := new(requests.UpdateCatalogItem)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	pkg, err := ctrl.CatalogUsecase.UpdatePackage(r.Context(), packageID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCatalogItemSuccessMessage, pkg)
}

func (ctrl *CatalogController) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "packageID")

	if err := ctrl.CatalogUsecase.DeletePackage(r.Context(), packageID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCatalogItemSuccessMessage, nil)
}

func (ctrl *CatalogController) CreateXray(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateXray)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	xray, err := ctrl.CatalogUsecase.CreateXray(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCatalogItemSuccessMessage, xray)
}

func (ctrl *CatalogController) GetXray(w http.ResponseWriter, r *http.Request) {
	xrayID := chi.URLParam(r, "xrayID")

	xray, err := ctrl.CatalogUsecase.FindXrayByID(r.Context(), xrayID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, xray)
}

func (ctrl *CatalogController) UpdateXray(w http.ResponseWriter, r *http.Request) {
	xrayID := chi.URLParam(r, "xrayID")

	request := new(requests.UpdateCatalogItem)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	xray, err := ctrl.CatalogUsecase.UpdateXray(r.Context(), xrayID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCatalogItemSuccessMessage, xray)
}

func (ctrl *CatalogController) DeleteXray(w http.ResponseWriter, r *http.Request) {
	xrayID := chi.URLParam(r, "xrayID")

	if err := ctrl.CatalogUsecase.DeleteXray(r.Context(), xrayID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCatalogItemSuccessMessage, nil)
}

func (ctrl *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCategory)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	category, err := ctrl.CatalogUsecase.CreateCategory(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCatalogItemSuccessMessage, category)
}

func (ctrl *CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := ctrl.CatalogUsecase.FindAllCategories(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogItemSuccessMessage, categories)
}

func (ctrl *CatalogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	if err := ctrl.CatalogUsecase.DeleteCategory(r.Context(), categoryID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCatalogItemSuccessMessage, nil)
}
