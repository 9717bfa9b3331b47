package adaptor

import (
	"net/http"

	"pilgrim-provider/internal/usecase"
	"pilgrim-provider/pkg/utils"

	"go.uber.org/zap"
)

type ProviderHandler struct {
	service usecase.ProviderService
	log     *zap.Logger
}

func NewProviderHandler(service usecase.ProviderService, log *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		service: service,
		log:     log.With(zap.String("handler", "provider")),
	}
}

// GetProfile handles GET /provider-profile
func (h *ProviderHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	profile, err := h.service.GetProviderProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get provider profile")
		return
	}

	utils.ResponseSuccess(w, profile)
}
