package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
	"github.com/masrooor/islamic-fees-hub/app/payroll"
)

const salaryColumns = `id, teacher_id, month, base_salary, loan_deduction, advance_deduction,
	other_deduction, net_paid, custom_amount, date_paid, payment_mode, notes,
	receipt_url, proof_image_url, created_at`

func scanSalary(row interface{ Scan(...interface{}) error }) (*models.TeacherSalary, error) {
	s := &models.TeacherSalary{}
	err := row.Scan(&s.ID, &s.TeacherID, &s.Month, &s.BaseSalary, &s.LoanDeduction,
		&s.AdvanceDeduction, &s.OtherDeduction, &s.NetPaid, &s.CustomAmount,
		&s.DatePaid, &s.PaymentMode, &s.Notes, &s.ReceiptURL, &s.ProofImageURL,
		&s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSalaries returns salary records, optionally filtered by teacher and/or
// month, newest first.
func GetSalaries(db *sql.DB, teacherID, month string) ([]*models.TeacherSalary, error) {
	query := `SELECT ` + salaryColumns + ` FROM teacher_salaries WHERE 1=1`
	var args []interface{}
	if teacherID != "" {
		args = append(args, teacherID)
		query += ` AND teacher_id = $1`
	}
	if month != "" {
		args = append(args, month)
		if len(args) == 1 {
			query += ` AND month = $1`
		} else {
			query += ` AND month = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salaries []*models.TeacherSalary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			continue
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}

// GetSalariesForMonth returns the existing salary rows for one teacher and
// month; payroll sums their NetPaid into "paid so far".
func GetSalariesForMonth(db *sql.DB, teacherID, month string) ([]*models.TeacherSalary, error) {
	return GetSalaries(db, teacherID, month)
}

// RecordSalaryPayment persists one pay run atomically: the append-only salary
// row and every loan balance the run changed go through a single transaction,
// so a concurrent run against the same teacher cannot interleave a
// double-deduction between the two writes.
//
// The loans passed in must already carry their post-payment Remaining/Status
// (payroll.ApplyPayment mutates them in memory first).
func RecordSalaryPayment(db *sql.DB, rec *models.TeacherSalary, loans []*models.TeacherLoan) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rec.ID = uuid.NewString()
	if rec.PaymentMode == "" {
		rec.PaymentMode = models.PaymentCash
	}
	err = tx.QueryRow(`
		INSERT INTO teacher_salaries (id, teacher_id, month, base_salary, loan_deduction,
			advance_deduction, other_deduction, net_paid, custom_amount, date_paid,
			payment_mode, notes, receipt_url, proof_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at`,
		rec.ID, rec.TeacherID, rec.Month, rec.BaseSalary, rec.LoanDeduction,
		rec.AdvanceDeduction, rec.OtherDeduction, rec.NetPaid, rec.CustomAmount,
		rec.DatePaid, rec.PaymentMode, rec.Notes, rec.ReceiptURL, rec.ProofImageURL,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert salary record: %v", err)
	}

	for _, loan := range loans {
		if err := updateLoanTx(tx, loan); err != nil {
			return fmt.Errorf("failed to update loan %s: %v", loan.ID, err)
		}
	}

	return tx.Commit()
}

// GetPendingSalaryTotal sums outstanding net pay for a month across active
// teachers. It runs the same per-teacher computation as the pending-salary
// listing, so the dashboard figure always agrees with that endpoint's total.
func GetPendingSalaryTotal(db *sql.DB, month string) (float64, error) {
	teachers, err := GetAllTeachers(db, true)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, teacher := range teachers {
		loans, err := GetActiveLoans(db, teacher.ID)
		if err != nil {
			return 0, err
		}
		advances, err := GetAdvances(db, teacher.ID, month)
		if err != nil {
			return 0, err
		}
		prior, err := GetSalaries(db, teacher.ID, month)
		if err != nil {
			return 0, err
		}
		breakdown := payroll.ComputeExpectedPay(teacher, payroll.Month(month), loans, advances, prior, 0)
		total += breakdown.PendingAmount
	}
	return total, nil
}
