package routers

import (
	"medportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, c *controllers.ScheduleController) {
	router.Post("/", c.OpenSchedule)
	router.Route("/{sessionId}", func(r chi.Router) {
		r.Get("/", c.GetSchedule)
		r.Delete("/", c.CloseSchedule)
		r.Put("/date", c.ChangeDate)
		r.Post("/slots", c.AddSlot)
		r.Delete("/slots/{slotId}", c.DeleteSlot)
	})
}
