package response

import (
	"errors"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/attendance"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/auth"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/document"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/org"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/request"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/site"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Conflicts carry the id of the blocking row
	var overlapErr *assignment.OverlapError
	if errors.As(err, &overlapErr) {
		Conflict(w, overlapErr.Error(), map[string]string{
			"blocking_assignment_id": overlapErr.BlockingID,
		})
		return
	}
	var duplicateErr *attendance.DuplicateDayError
	if errors.As(err, &duplicateErr) {
		Conflict(w, duplicateErr.Error(), map[string]string{
			"existing_attendance_id": duplicateErr.ExistingID,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is inactive")
	case errors.Is(err, user.ErrRoleMismatch):
		Forbidden(w, "User does not hold the required role")

	// Org domain errors
	case errors.Is(err, org.ErrOrgNotFound):
		NotFound(w, "Organization not found")

	// Crane domain errors
	case errors.Is(err, crane.ErrCraneNotFound):
		NotFound(w, "Crane not found")
	case errors.Is(err, crane.ErrCraneModelNotFound):
		NotFound(w, "Crane model not found")
	case errors.Is(err, crane.ErrCraneNotAssignable):
		Conflict(w, "Crane is not in an assignable status", nil)

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteNotPending):
		Conflict(w, "Site is not pending approval", nil)
	case errors.Is(err, site.ErrSiteNotActive):
		Conflict(w, "Site is not active", nil)

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentOverlap):
		Conflict(w, "Resource is already assigned during the requested period", nil)
	case errors.Is(err, assignment.ErrNotAssigned):
		Conflict(w, "Assignment is not in ASSIGNED status", nil)
	case errors.Is(err, assignment.ErrIntervalNotNested):
		BadRequest(w, "Interval must fall within the parent assignment's interval", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already recorded for this day", nil)
	case errors.Is(err, attendance.ErrOutsideAssignment):
		BadRequest(w, "work_date falls outside the driver assignment's interval", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance is already checked out", nil)
	case errors.Is(err, attendance.ErrNoOpenAttendanceDay):
		NotFound(w, "No open attendance for this day")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "check_out_at must not be before check_in_at", nil)

	// Document domain errors
	case errors.Is(err, document.ErrRequestNotFound):
		NotFound(w, "Document request not found")
	case errors.Is(err, document.ErrItemNotFound):
		NotFound(w, "Document item not found")
	case errors.Is(err, document.ErrItemNotSubmitted):
		Conflict(w, "Document item is not in SUBMITTED status", nil)

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestNotPending):
		Conflict(w, "Request is not in PENDING status", nil)
	case errors.Is(err, request.ErrInvalidResponse):
		BadRequest(w, "Response status must be APPROVED or REJECTED", nil)
	case errors.Is(err, request.ErrNotCraneOwner):
		Forbidden(w, "Approver's organization does not own the target crane")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
