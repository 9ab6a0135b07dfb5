package hra

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

type HraController struct {
	Log        *zap.Logger
	HraUsecase contracts.HraUsecase
}

func NewHraController(logger *zap.Logger, hraUsecase contracts.HraUsecase) *HraController {
	return &HraController{
		Log:        logger,
		HraUsecase: hraUsecase,
	}
}

func (ctrl *HraController) CreateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateHraQuestionnaire)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	questionnaire, err := ctrl.HraUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuestionnaireSuccessMessage, questionnaire)
}

func (ctrl *HraController) GetQuestionnaires(w http.ResponseWriter, r *http.Request) {
	questionnaires, err := ctrl.HraUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSuccessMessage, questionnaires)
}

func (ctrl *HraController) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, "questionnaireID")

	questionnaire, err := ctrl.HraUsecase.FindByID(r.Context(), questionnaireID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSuccessMessage, questionnaire)
}

func (ctrl *HraController) DeleteQuestionnaire(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, "questionnaireID")

	if err := ctrl.HraUsecase.Delete(r.Context(), questionnaireID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteQuestionnaireSuccessMessage, nil)
}

func (ctrl *HraController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, "questionnaireID")

	request := new(requests.SubmitHraResponse)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.HraUsecase.SubmitResponse(r.Context(), questionnaireID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitHraResponseSuccessMessage, result)
}
