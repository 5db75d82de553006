package request

// CreateAttendanceRequest represents a staff clock-in/out request
type CreateAttendanceRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Status string `json:"status" binding:"required"`
}
