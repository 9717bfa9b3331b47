package adaptor

import (
	"pilgrim-provider/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Service  *ServiceHandler
	Booking  *BookingHandler
	Stats    *StatsHandler
	Provider *ProviderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Service:  NewServiceHandler(service.Catalog, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Stats:    NewStatsHandler(service.Stats, log),
		Provider: NewProviderHandler(service.Provider, log),
	}
}
