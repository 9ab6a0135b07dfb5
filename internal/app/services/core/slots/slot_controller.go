package slots

import (
	"encoding/json"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	return &SlotController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

// resourceTypeFromURL maps the route segment to a booking type. Routes are
// mounted under /doctors/{id}/slots and /diagnostics/{id}/slots.
func resourceTypeFromURL(r *http.Request) (resourceType, resourceID string, err error) {
	if doctorID := chi.URLParam(r, "doctorID"); doctorID != "" {
		return constvars.BookingTypeDoctor, doctorID, nil
	}
	if diagnosticID := chi.URLParam(r, "diagnosticID"); diagnosticID != "" {
		return constvars.BookingTypeDiagnostic, diagnosticID, nil
	}
	return "", "", exceptions.ErrURLParamIDValidation(fmt.Errorf("missing resource id"), "doctorID|diagnosticID")
}

func (ctrl *SlotController) AddSlot(w http.ResponseWriter, r *http.Request) {
	resourceType, resourceID, err := resourceTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.SlotUsecase.AddSlot(r.Context(), resourceType, resourceID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddSlotSuccessMessage, nil)
}

func (ctrl *SlotController) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	resourceType, resourceID, err := resourceTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RemoveSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.SlotUsecase.RemoveSlot(r.Context(), resourceType, resourceID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveSlotSuccessMessage, nil)
}

func (ctrl *SlotController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	resourceType, resourceID, err := resourceTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.SlotUsecase.UpdateSlot(r.Context(), resourceType, resourceID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSlotSuccessMessage, nil)
}

func (ctrl *SlotController) QuerySlots(w http.ResponseWriter, r *http.Request) {
	resourceType, resourceID, err := resourceTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	date := r.URL.Query().Get("date")
	if _, parseErr := time.Parse(constvars.SlotDateLayout, date); parseErr != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("date %q: %w", date, parseErr)))
		return
	}
	slotType := r.URL.Query().Get("slotType")

	result, err := ctrl.SlotUsecase.QuerySlotsByDate(r.Context(), resourceType, resourceID, date, slotType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuerySlotsSuccessMessage, result)
}
