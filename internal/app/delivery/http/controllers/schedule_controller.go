package controllers

import (
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/exceptions"
	"medportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Usecase contracts.ScheduleUsecase
	Log     *zap.Logger
}

func NewScheduleController(usecase contracts.ScheduleUsecase, log *zap.Logger) *ScheduleController {
	return &ScheduleController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *ScheduleController) OpenSchedule(w http.ResponseWriter, r *http.Request) {
	request := new(requests.OpenSchedule)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	opened, err := c.Usecase.OpenSchedule(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OpenScheduleSuccessMessage, opened)
}

func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := c.Usecase.GetSchedule(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, schedule)
}

func (c *ScheduleController) ChangeDate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangeScheduleDate)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	schedule, err := c.Usecase.ChangeDate(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChangeScheduleDateSuccessMessage, schedule)
}

// AddSlot only decodes the body; field presence is checked by the usecase so
// that every missing field is reported.
func (c *ScheduleController) AddSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddSlot)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	slot, err := c.Usecase.AddSlot(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSlotSuccessMessage, slot)
}

func (c *ScheduleController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	slotID := chi.URLParam(r, constvars.URLParamSlotID)

	err := c.Usecase.DeleteSlot(r.Context(), sessionID, slotID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSlotSuccessMessage, nil)
}

func (c *ScheduleController) CloseSchedule(w http.ResponseWriter, r *http.Request) {
	err := c.Usecase.CloseSchedule(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CloseScheduleSuccessMessage, nil)
}
