package repository

import (
	"context"

	"github.com/fajara33/rd-company/internal/domain/entity"
)

// AttendanceRepository defines data operations over the attendance log.
type AttendanceRepository interface {
	// List returns the attendance log in insertion order.
	List(ctx context.Context) ([]entity.Attendance, error)
	// Create assigns the id and the store-side timestamp and appends the
	// record. The log is append-only.
	Create(ctx context.Context, rec *entity.Attendance) error
}
