package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const loanColumns = `id, teacher_id, amount, remaining, date_issued, notes, status,
	repayment_type, repayment_month, repayment_percentage, repayment_amount, created_at`

func scanLoan(row interface{ Scan(...interface{}) error }) (*models.TeacherLoan, error) {
	l := &models.TeacherLoan{}
	err := row.Scan(&l.ID, &l.TeacherID, &l.Amount, &l.Remaining, &l.DateIssued,
		&l.Notes, &l.Status, &l.RepaymentType, &l.RepaymentMonth,
		&l.RepaymentPercentage, &l.RepaymentAmount, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GetLoans returns loans, optionally filtered by teacher and/or status,
// newest first.
func GetLoans(db *sql.DB, teacherID string, status models.LoanStatus) ([]*models.TeacherLoan, error) {
	query := `SELECT ` + loanColumns + ` FROM teacher_loans WHERE 1=1`
	var args []interface{}
	if teacherID != "" {
		args = append(args, teacherID)
		query += ` AND teacher_id = $1`
	}
	if status != "" {
		args = append(args, string(status))
		if len(args) == 1 {
			query += ` AND status = $1`
		} else {
			query += ` AND status = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*models.TeacherLoan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			continue
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// GetActiveLoans returns a teacher's active loans in issue order, the order
// payroll applies deductions in.
func GetActiveLoans(db *sql.DB, teacherID string) ([]*models.TeacherLoan, error) {
	rows, err := db.Query(`
		SELECT `+loanColumns+`
		FROM teacher_loans
		WHERE teacher_id = $1 AND status = 'active'
		ORDER BY date_issued, id`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*models.TeacherLoan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			continue
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// GetLoanByID returns a single loan or sql.ErrNoRows.
func GetLoanByID(db *sql.DB, id string) (*models.TeacherLoan, error) {
	row := db.QueryRow(`SELECT `+loanColumns+` FROM teacher_loans WHERE id = $1`, id)
	return scanLoan(row)
}

// CreateLoan inserts a loan. Remaining starts equal to Amount.
func CreateLoan(db *sql.DB, l *models.TeacherLoan) error {
	l.ID = uuid.NewString()
	l.Remaining = l.Amount
	l.Status = models.LoanActive
	return db.QueryRow(`
		INSERT INTO teacher_loans (id, teacher_id, amount, remaining, date_issued, notes,
			status, repayment_type, repayment_month, repayment_percentage, repayment_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		l.ID, l.TeacherID, l.Amount, l.Remaining, l.DateIssued, l.Notes,
		l.Status, l.RepaymentType, l.RepaymentMonth, l.RepaymentPercentage, l.RepaymentAmount,
	).Scan(&l.CreatedAt)
}

// UpdateLoanBalance is the explicit administrative write for a loan balance.
// It keeps status consistent with the new balance.
func UpdateLoanBalance(db *sql.DB, id string, remaining float64) error {
	status := models.LoanActive
	if remaining <= 0 {
		remaining = 0
		status = models.LoanPaid
	}
	result, err := db.Exec(`
		UPDATE teacher_loans SET remaining = $2, status = $3 WHERE id = $1`,
		id, remaining, status)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// updateLoanTx persists an in-memory loan mutation inside a pay-run
// transaction.
func updateLoanTx(tx *sql.Tx, l *models.TeacherLoan) error {
	_, err := tx.Exec(`
		UPDATE teacher_loans SET remaining = $2, status = $3 WHERE id = $1`,
		l.ID, l.Remaining, l.Status)
	return err
}

// GetOutstandingLoanTotal sums remaining balances across all active loans.
func GetOutstandingLoanTotal(db *sql.DB) (float64, error) {
	var total float64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(remaining), 0) FROM teacher_loans WHERE status = 'active'`,
	).Scan(&total)
	return total, err
}
