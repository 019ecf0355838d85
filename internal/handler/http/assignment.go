package http

import (
	"encoding/json"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/middleware"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	assignmentsvc "github.com/dycrane/crane-safety-backend-go/internal/service/assignment"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	AssignCrane(w http.ResponseWriter, r *http.Request)
	AssignDriver(w http.ResponseWriter, r *http.Request)
	ReleaseCrane(w http.ResponseWriter, r *http.Request)
	ReleaseDriver(w http.ResponseWriter, r *http.Request)
	ListCraneAssignments(w http.ResponseWriter, r *http.Request)
	ListDriverAssignments(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService *assignmentsvc.Service
}

func NewAssignmentHandler(assignmentService *assignmentsvc.Service) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
	}
}

// AssignCrane implements AssignmentHandler.
func (h *assignmentHandlerImpl) AssignCrane(w http.ResponseWriter, r *http.Request) {
	var req assignment.AssignCraneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The authenticated caller is the assigning safety manager
	if userID, ok := middleware.UserIDFromContext(r); ok {
		req.SafetyManagerID = userID
	}

	result, err := h.assignmentService.AssignCraneToSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Crane assigned", result)
}

// AssignDriver implements AssignmentHandler.
func (h *assignmentHandlerImpl) AssignDriver(w http.ResponseWriter, r *http.Request) {
	var req assignment.AssignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.AssignDriverToCrane(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Driver assigned", result)
}

// ReleaseCrane implements AssignmentHandler.
func (h *assignmentHandlerImpl) ReleaseCrane(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.assignmentService.ReleaseCraneAssignment(r.Context(), assignmentID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Crane assignment released", nil)
}

// ReleaseDriver implements AssignmentHandler.
func (h *assignmentHandlerImpl) ReleaseDriver(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.assignmentService.ReleaseDriverAssignment(r.Context(), assignmentID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Driver assignment released", nil)
}

// ListCraneAssignments implements AssignmentHandler.
func (h *assignmentHandlerImpl) ListCraneAssignments(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	result, err := h.assignmentService.ListCraneAssignmentsBySite(r.Context(), siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDriverAssignments implements AssignmentHandler.
func (h *assignmentHandlerImpl) ListDriverAssignments(w http.ResponseWriter, r *http.Request) {
	siteCraneID := chi.URLParam(r, "assignmentID")

	result, err := h.assignmentService.ListDriverAssignments(r.Context(), siteCraneID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
