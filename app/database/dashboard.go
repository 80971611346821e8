package database

import (
	"database/sql"

	"github.com/masrooor/islamic-fees-hub/app/models"
)

// GetDashboardStats returns the headline numbers for the admin dashboard.
// month is the fee month the collection and pending figures refer to.
func GetDashboardStats(db *sql.DB, month string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE status = 'active'`).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM teachers WHERE status = 'active'`).Scan(&stats.TotalTeachers)
	if err != nil {
		return nil, err
	}

	if stats.CollectedThisMonth, err = GetCollectedTotal(db, month); err != nil {
		return nil, err
	}

	pendingFees, err := GetPendingFees(db, month)
	if err != nil {
		return nil, err
	}
	for _, row := range pendingFees {
		stats.PendingFees += row.PendingAmount
	}

	if stats.PendingSalaries, err = GetPendingSalaryTotal(db, month); err != nil {
		return nil, err
	}

	if stats.OutstandingLoans, err = GetOutstandingLoanTotal(db); err != nil {
		return nil, err
	}

	return stats, nil
}
