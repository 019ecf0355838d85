package http

import (
	"encoding/json"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/request"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/middleware"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	requestsvc "github.com/dycrane/crane-safety-backend-go/internal/service/request"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListForOwner(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService *requestsvc.Service
}

func NewRequestHandler(requestService *requestsvc.Service) RequestHandler {
	return &requestHandlerImpl{
		requestService: requestService,
	}
}

// Create implements RequestHandler.
func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The authenticated caller is the requester
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.RequesterID = userID
	}

	result, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request created", result)
}

// Respond implements RequestHandler.
func (h *requestHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req request.RespondRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	requestID := chi.URLParam(r, "requestID")

	// The authenticated caller is the approver
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.ApproverID = userID
	}

	result, err := h.requestService.Respond(r.Context(), requestID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request resolved", result)
}

// Get implements RequestHandler.
func (h *requestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	result, err := h.requestService.GetByID(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForOwner implements RequestHandler.
func (h *requestHandlerImpl) ListForOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	filter := request.OwnerListFilter{}
	if t := r.URL.Query().Get("type"); t != "" {
		rt := request.RequestType(t)
		filter.Type = &rt
	}
	if s := r.URL.Query().Get("status"); s != "" {
		rs := request.RequestStatus(s)
		filter.Status = &rs
	}

	result, err := h.requestService.ListForOwner(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
