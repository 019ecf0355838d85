package http

import (
	"encoding/json"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/site"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/middleware"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	sitesvc "github.com/dycrane/crane-safety-backend-go/internal/service/site"
	"github.com/go-chi/chi/v5"
)

type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type siteHandlerImpl struct {
	siteService *sitesvc.Service
}

func NewSiteHandler(siteService *sitesvc.Service) SiteHandler {
	return &siteHandlerImpl{
		siteService: siteService,
	}
}

// Create implements SiteHandler.
func (h *siteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req site.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The authenticated caller is the requester
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.RequestedByID = userID
	}

	result, err := h.siteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site requested", result)
}

// Get implements SiteHandler.
func (h *siteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	result, err := h.siteService.GetByID(r.Context(), siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SiteHandler.
func (h *siteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := site.ListFilter{}

	if r.URL.Query().Get("mine") == "true" {
		if userID, ok := middleware.UserIDFromContext(r); ok {
			filter.Mine = true
			filter.UserID = &userID
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := site.SiteStatus(status)
		filter.Status = &s
	}

	result, err := h.siteService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements SiteHandler.
func (h *siteHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.siteService.Approve(r.Context(), siteID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site approved", result)
}

// Reject implements SiteHandler.
func (h *siteHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.siteService.Reject(r.Context(), siteID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site rejected", result)
}

// Complete implements SiteHandler.
func (h *siteHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.siteService.Complete(r.Context(), siteID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site completed", result)
}
