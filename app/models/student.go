package models

import "time"

// Student represents an enrolled student.
type Student struct {
	ID             string        `json:"id"`
	StudentCode    string        `json:"student_code"`
	Name           string        `json:"name" validate:"required"`
	GuardianName   string        `json:"guardian_name"`
	Contact        string        `json:"contact"`
	ClassGrade     string        `json:"class_grade" validate:"required"`
	EnrollmentDate time.Time     `json:"enrollment_date"`
	Status         StudentStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}
