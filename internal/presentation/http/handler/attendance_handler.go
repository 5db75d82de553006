package handler

import (
	"github.com/fajara33/rd-company/internal/application/service"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/request"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List handles listing the attendance log
func (h *AttendanceHandler) List(c *gin.Context) {
	recs, err := h.attendanceService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance retrieved successfully", recs)
}

// Create handles recording a clock-in/out event
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req request.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rec, err := h.attendanceService.Record(c.Request.Context(), req.Name, enum.AttendanceStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Attendance recorded successfully", rec)
}
