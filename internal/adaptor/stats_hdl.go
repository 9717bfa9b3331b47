package adaptor

import (
	"net/http"

	"pilgrim-provider/internal/usecase"
	"pilgrim-provider/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetStats handles GET /provider-stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	stats, err := h.service.GetProviderStats(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get provider stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
