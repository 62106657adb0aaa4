package routers

import (
	"medportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.OpenBookingForm)
	router.Route("/{sessionId}", func(r chi.Router) {
		r.Get("/", bookingController.GetBookingForm)
		r.Delete("/", bookingController.CloseBookingForm)
		r.Put("/hospital", bookingController.SelectHospital)
		r.Put("/doctor", bookingController.SelectDoctor)
		r.Put("/date", bookingController.SelectDate)
		r.Put("/slot", bookingController.SelectSlot)
		r.Put("/details", bookingController.SetDetails)
		r.Post("/submit", bookingController.Submit)
		r.Post("/reset", bookingController.Reset)
	})
}
