package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/attendance"
)

type Service struct {
	attendance.AttendanceRepository
	driverAssignmentRepository assignment.DriverAssignmentRepository
}

func NewService(
	attendanceRepository attendance.AttendanceRepository,
	driverAssignmentRepository assignment.DriverAssignmentRepository,
) *Service {
	return &Service{
		AttendanceRepository:       attendanceRepository,
		driverAssignmentRepository: driverAssignmentRepository,
	}
}

// Record writes one attendance row for one work day. The parent assignment
// must be ASSIGNED and the work date must fall inside its interval. A second
// record for the same day surfaces as a DuplicateDayError.
func (s *Service) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.DriverAttendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.DriverAttendance{}, err
	}

	parent, err := s.driverAssignmentRepository.GetByID(ctx, req.DriverAssignmentID)
	if err != nil {
		return attendance.DriverAttendance{}, err
	}
	if parent.Status != assignment.AssignmentStatusAssigned {
		return attendance.DriverAttendance{}, assignment.ErrNotAssigned
	}

	workDate, _ := time.Parse("2006-01-02", req.WorkDate)
	parentInterval := assignment.Interval{Start: parent.StartDate, End: parent.EndDate}
	if !parentInterval.Contains(assignment.Interval{Start: workDate, End: &workDate}) {
		return attendance.DriverAttendance{}, attendance.ErrOutsideAssignment
	}

	checkInAt, _ := time.Parse(time.RFC3339, req.CheckInAt)
	var checkOutAt *time.Time
	if req.CheckOutAt != nil {
		t, _ := time.Parse(time.RFC3339, *req.CheckOutAt)
		checkOutAt = &t
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.DriverAttendance{
		DriverAssignmentID: req.DriverAssignmentID,
		WorkDate:           workDate,
		CheckInAt:          checkInAt,
		CheckOutAt:         checkOutAt,
	})
	if err != nil {
		return attendance.DriverAttendance{}, err
	}

	return created, nil
}

// CheckOut closes the open attendance row for the given day.
func (s *Service) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.DriverAttendance, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return attendance.DriverAttendance{}, fmt.Errorf("failed to parse work date: %w", err)
	}
	checkOutAt, err := time.Parse(time.RFC3339, req.CheckOutAt)
	if err != nil {
		return attendance.DriverAttendance{}, fmt.Errorf("failed to parse check-out time: %w", err)
	}

	existing, err := s.AttendanceRepository.GetByAssignmentAndDate(ctx, req.DriverAssignmentID, workDate)
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return attendance.DriverAttendance{}, attendance.ErrNoOpenAttendanceDay
		}
		return attendance.DriverAttendance{}, err
	}

	if existing.CheckOutAt != nil {
		return attendance.DriverAttendance{}, attendance.ErrAlreadyCheckedOut
	}
	if checkOutAt.Before(existing.CheckInAt) {
		return attendance.DriverAttendance{}, attendance.ErrCheckOutBeforeIn
	}

	updated, err := s.AttendanceRepository.SetCheckOut(ctx, existing.ID, checkOutAt)
	if err != nil {
		return attendance.DriverAttendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return updated, nil
}

func (s *Service) ListByAssignment(ctx context.Context, driverAssignmentID string) ([]attendance.DriverAttendance, error) {
	records, err := s.AttendanceRepository.ListByAssignment(ctx, driverAssignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
