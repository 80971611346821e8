package models

import "time"

// Teacher represents a staff member on the payroll.
type Teacher struct {
	ID            string        `json:"id"`
	Name          string        `json:"name" validate:"required"`
	Contact       string        `json:"contact"`
	CNIC          string        `json:"cnic"`
	JoiningDate   time.Time     `json:"joining_date"`
	MonthlySalary float64       `json:"monthly_salary" validate:"gt=0"`
	Status        TeacherStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// IsActive reports whether the teacher participates in payroll runs.
func (t *Teacher) IsActive() bool {
	return t.Status == TeacherActive
}
