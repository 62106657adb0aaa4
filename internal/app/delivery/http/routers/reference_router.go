package routers

import (
	"medportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReferenceRoutes(router chi.Router, referenceController *controllers.ReferenceController) {
	router.Get("/", referenceController.ListHospitals)
	router.Get("/{hospitalId}/doctors", referenceController.ListDoctorsByHospital)
}
