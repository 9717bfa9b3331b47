package adaptor

import (
	"encoding/json"
	"net/http"

	"pilgrim-provider/internal/dto/request"
	"pilgrim-provider/internal/dto/response"
	"pilgrim-provider/internal/usecase"
	"pilgrim-provider/pkg/utils"

	"go.uber.org/zap"
)

type ServiceHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewServiceHandler(service usecase.CatalogService, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "service")),
	}
}

// GetServices handles GET /provider-services, with or without an id
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	if id := resourceID(r); id != "" {
		service, err := h.service.GetService(r.Context(), userID, id)
		if err != nil {
			handleServiceError(h.log, w, err, "get service")
			return
		}
		utils.ResponseSuccess(w, service)
		return
	}

	services, err := h.service.ListServices(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list services")
		return
	}

	utils.ResponseSuccess(w, services)
}

// CreateService handles POST /provider-services
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	// provider_id and the status fields in the body are ignored
	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.CreateService(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create service")
		return
	}

	utils.ResponseSuccess(w, service)
}

// UpdateService handles PUT /provider-services?id= (or /{id})
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	id := resourceID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.UpdateServiceRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	service, err := h.service.UpdateService(r.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, service)
}

// DeleteService handles DELETE /provider-services?id= (or /{id})
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	id := resourceID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), userID, id); err != nil {
		handleServiceError(h.log, w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, response.DeleteResponse{Success: true})
}
