package models

// AttendanceStatus values as recorded by class representatives.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// AttendanceRecord represents one attendance mark for a student in a unit
type AttendanceRecord struct {
	ID       int64  `json:"id"`
	RegNo    string `json:"regNo"`
	UnitCode string `json:"unitCode"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// AttendanceSummary is a per-student attendance percentage for a class
type AttendanceSummary struct {
	Name       string  `json:"name"`
	Attendance float64 `json:"attendance"`
}
