package models

import "time"

// TeacherAttendance records one working day for a teacher. TimeIn/TimeOut
// stay nil until the respective check happens.
type TeacherAttendance struct {
	ID        string     `json:"id"`
	TeacherID string     `json:"teacher_id" validate:"required,uuid"`
	Date      time.Time  `json:"date"`
	TimeIn    *time.Time `json:"time_in,omitempty"`
	TimeOut   *time.Time `json:"time_out,omitempty"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}
