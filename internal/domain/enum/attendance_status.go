package enum

// AttendanceStatus marks a staff clock event. MASUK/KELUAR are the persisted
// wire values (clock-in / clock-out).
type AttendanceStatus string

const (
	AttendanceClockIn  AttendanceStatus = "MASUK"
	AttendanceClockOut AttendanceStatus = "KELUAR"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendanceClockIn || s == AttendanceClockOut
}

func (s AttendanceStatus) String() string {
	return string(s)
}
