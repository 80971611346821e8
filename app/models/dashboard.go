package models

// DashboardStats aggregates the headline numbers for the admin dashboard.
type DashboardStats struct {
	TotalStudents      int     `json:"total_students"`
	TotalTeachers      int     `json:"total_teachers"`
	CollectedThisMonth float64 `json:"collected_this_month"`
	PendingFees        float64 `json:"pending_fees"`
	PendingSalaries    float64 `json:"pending_salaries"`
	OutstandingLoans   float64 `json:"outstanding_loans"`
}
