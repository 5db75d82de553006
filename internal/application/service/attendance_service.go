package service

import (
	"context"
	"strings"

	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/pkg/apperror"
)

// AttendanceService maintains the append-only staff clock log.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// List returns the attendance log in insertion order.
func (s *AttendanceService) List(ctx context.Context) ([]entity.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}

// Record appends a clock event for the named staff member.
func (s *AttendanceService) Record(ctx context.Context, name string, status enum.AttendanceStatus) (*entity.Attendance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Staff name is required")
	}
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Status must be MASUK or KELUAR")
	}

	rec := &entity.Attendance{
		Name:   name,
		Status: status,
	}
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
