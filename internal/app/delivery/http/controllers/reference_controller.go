package controllers

import (
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReferenceController struct {
	Usecase contracts.ReferenceUsecase
	Log     *zap.Logger
}

func NewReferenceController(usecase contracts.ReferenceUsecase, log *zap.Logger) *ReferenceController {
	return &ReferenceController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *ReferenceController) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := c.Usecase.ListHospitals(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalsSuccessMessage, hospitals)
}

func (c *ReferenceController) ListDoctorsByHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	doctors, err := c.Usecase.ListDoctorsByHospital(r.Context(), hospitalID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}
