package controllers

import (
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"medportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Usecase contracts.BookingUsecase
	Log     *zap.Logger
}

func NewBookingController(usecase contracts.BookingUsecase, log *zap.Logger) *BookingController {
	return &BookingController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *BookingController) OpenBookingForm(w http.ResponseWriter, r *http.Request) {
	request := new(requests.OpenBookingForm)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	opened, err := c.Usecase.OpenBookingForm(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OpenBookingFormSuccessMessage, opened)
}

func (c *BookingController) GetBookingForm(w http.ResponseWriter, r *http.Request) {
	form, err := c.Usecase.GetBookingForm(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingFormSuccessMessage, form)
}

func (c *BookingController) SelectHospital(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectHospital)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	form, err := c.Usecase.SelectHospital(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingFormSuccessMessage, form)
}

func (c *BookingController) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectDoctor)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	form, err := c.Usecase.SelectDoctor(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingFormSuccessMessage, form)
}

func (c *BookingController) SelectDate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectDate)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	form, err := c.Usecase.SelectDate(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingFormSuccessMessage, form)
}

func (c *BookingController) SelectSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectSlot)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	form, err := c.Usecase.SelectSlot(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingFormSuccessMessage, form)
}

func (c *BookingController) SetDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookingDetails)
	err := utils.ParseAndValidateBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	form, err := c.Usecase.SetDetails(r.Context(), chi.URLParam(r, constvars.URLParamSessionID), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingFormSuccessMessage, form)
}

func (c *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	form, err := c.Usecase.Submit(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, form)
}

func (c *BookingController) Reset(w http.ResponseWriter, r *http.Request) {
	form, err := c.Usecase.Reset(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetBookingFormSuccessMessage, form)
}

func (c *BookingController) CloseBookingForm(w http.ResponseWriter, r *http.Request) {
	err := c.Usecase.CloseBookingForm(r.Context(), chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CloseBookingFormSuccessMessage, nil)
}
