package entity

import (
	"time"

	"github.com/fajara33/rd-company/internal/domain/enum"
)

// Attendance is an append-only staff clock-in/out log entry. The name is
// free text; there is no linkage to a staff identity beyond it.
type Attendance struct {
	ID     string                `json:"id"`
	Date   time.Time             `json:"date"`
	Name   string                `json:"name"`
	Status enum.AttendanceStatus `json:"status"`
}
