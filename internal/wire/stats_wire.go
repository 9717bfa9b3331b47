package wire

import (
	"pilgrim-provider/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStats(r chi.Router, statsHandler *adaptor.StatsHandler, protected func(chi.Router)) {
	r.Route("/provider-stats", func(r chi.Router) {
		protected(r)

		r.Get("/", statsHandler.GetStats)
	})
}

func wireProfile(r chi.Router, providerHandler *adaptor.ProviderHandler, protected func(chi.Router)) {
	r.Route("/provider-profile", func(r chi.Router) {
		protected(r)

		r.Get("/", providerHandler.GetProfile)
	})
}
