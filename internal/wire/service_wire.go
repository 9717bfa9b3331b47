package wire

import (
	"pilgrim-provider/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireServices(r chi.Router, serviceHandler *adaptor.ServiceHandler, protected func(chi.Router)) {
	r.Route("/provider-services", func(r chi.Router) {
		protected(r)

		// ?id= form
		r.Get("/", serviceHandler.GetServices)
		r.Post("/", serviceHandler.CreateService)
		r.Put("/", serviceHandler.UpdateService)
		r.Delete("/", serviceHandler.DeleteService)

		// /{id} form
		r.Get("/{id}", serviceHandler.GetServices)
		r.Put("/{id}", serviceHandler.UpdateService)
		r.Delete("/{id}", serviceHandler.DeleteService)
	})
}
