package dto

// AttendanceEntry is a single attendance mark in a batch submission
type AttendanceEntry struct {
	RegNo    string `json:"regNo" binding:"required"`
	UnitCode string `json:"unitCode" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=Present Absent"`
}

// SaveAttendanceRequest is the batch of marks for one session
type SaveAttendanceRequest []AttendanceEntry
