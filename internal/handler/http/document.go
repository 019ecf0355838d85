package http

import (
	"encoding/json"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/document"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/middleware"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	documentsvc "github.com/dycrane/crane-safety-backend-go/internal/service/document"
	"github.com/go-chi/chi/v5"
)

type DocumentHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	SubmitItem(w http.ResponseWriter, r *http.Request)
	ReviewItem(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService *documentsvc.Service
}

func NewDocumentHandler(documentService *documentsvc.Service) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// CreateRequest implements DocumentHandler.
func (h *documentHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req document.CreateDocumentRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The authenticated caller is the requesting safety manager
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.RequestedByID = userID
	}

	result, err := h.documentService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document request created", result)
}

// SubmitItem implements DocumentHandler.
func (h *documentHandlerImpl) SubmitItem(w http.ResponseWriter, r *http.Request) {
	var req document.SubmitItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "requestID")

	result, err := h.documentService.SubmitItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document submitted", result)
}

// ReviewItem implements DocumentHandler.
func (h *documentHandlerImpl) ReviewItem(w http.ResponseWriter, r *http.Request) {
	var req document.ReviewItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ItemID = chi.URLParam(r, "itemID")

	// The authenticated caller is the reviewer
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.ReviewerID = userID
	}

	result, err := h.documentService.ReviewItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document reviewed", result)
}

// ListMyRequests implements DocumentHandler.
func (h *documentHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.documentService.ListRequestsByDriver(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListItems implements DocumentHandler.
func (h *documentHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	result, err := h.documentService.ListItemsByRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
