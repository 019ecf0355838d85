package http

import (
	"net/http"
	"strconv"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	cranesvc "github.com/dycrane/crane-safety-backend-go/internal/service/crane"
	"github.com/go-chi/chi/v5"
)

type CraneHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetModel(w http.ResponseWriter, r *http.Request)
	ListModels(w http.ResponseWriter, r *http.Request)
	ListOwners(w http.ResponseWriter, r *http.Request)
}

type craneHandlerImpl struct {
	craneService *cranesvc.Service
}

func NewCraneHandler(craneService *cranesvc.Service) CraneHandler {
	return &craneHandlerImpl{
		craneService: craneService,
	}
}

// Get implements CraneHandler.
func (h *craneHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	craneID := chi.URLParam(r, "craneID")

	result, err := h.craneService.GetCrane(r.Context(), craneID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CraneHandler.
func (h *craneHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := crane.ListFilter{}

	if ownerOrgID := r.URL.Query().Get("owner_org_id"); ownerOrgID != "" {
		filter.OwnerOrgID = &ownerOrgID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := crane.CraneStatus(status)
		filter.Status = &s
	}
	if modelName := r.URL.Query().Get("model_name"); modelName != "" {
		filter.ModelName = &modelName
	}
	if minCapacity := r.URL.Query().Get("min_capacity"); minCapacity != "" {
		capacity, err := strconv.Atoi(minCapacity)
		if err != nil {
			response.BadRequest(w, "min_capacity must be an integer", nil)
			return
		}
		filter.MinCapacity = &capacity
	}

	result, err := h.craneService.ListCranes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetModel implements CraneHandler.
func (h *craneHandlerImpl) GetModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	result, err := h.craneService.GetModel(r.Context(), modelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListModels implements CraneHandler.
func (h *craneHandlerImpl) ListModels(w http.ResponseWriter, r *http.Request) {
	result, err := h.craneService.ListModels(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOwners implements CraneHandler.
func (h *craneHandlerImpl) ListOwners(w http.ResponseWriter, r *http.Request) {
	result, err := h.craneService.ListOwners(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
