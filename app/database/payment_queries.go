package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const paymentColumns = `id, student_id, fee_type, amount_paid, date, fee_month,
	receipt_number, receipt_printed, payment_mode, notes, collected_by, created_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(&p.ID, &p.StudentID, &p.FeeType, &p.AmountPaid, &p.Date,
		&p.FeeMonth, &p.ReceiptNumber, &p.ReceiptPrinted, &p.PaymentMode,
		&p.Notes, &p.CollectedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewReceiptNumber issues a receipt identifier: "RCP-" plus the current
// millisecond timestamp in uppercase base 36.
func NewReceiptNumber() string {
	return "RCP-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

// GetPayments returns fee payments, optionally filtered by student and/or
// fee month, newest first.
func GetPayments(db *sql.DB, studentID, feeMonth string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	var args []interface{}
	if studentID != "" {
		args = append(args, studentID)
		query += ` AND student_id = $1`
	}
	if feeMonth != "" {
		args = append(args, feeMonth)
		if len(args) == 1 {
			query += ` AND fee_month = $1`
		} else {
			query += ` AND fee_month = $2`
		}
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			continue
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment records a student fee payment, issuing the receipt number
// server side.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	p.ID = uuid.NewString()
	p.ReceiptNumber = NewReceiptNumber()
	if p.PaymentMode == "" {
		p.PaymentMode = models.PaymentCash
	}
	return db.QueryRow(`
		INSERT INTO payments (id, student_id, fee_type, amount_paid, date, fee_month,
			receipt_number, receipt_printed, payment_mode, notes, collected_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9, $10)
		RETURNING created_at`,
		p.ID, p.StudentID, p.FeeType, p.AmountPaid, p.Date, p.FeeMonth,
		p.ReceiptNumber, p.PaymentMode, p.Notes, p.CollectedBy,
	).Scan(&p.CreatedAt)
}

// MarkReceiptPrinted flags a payment's receipt as printed.
func MarkReceiptPrinted(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE payments SET receipt_printed = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PendingFeeRow is one student's tuition position for a fee month.
type PendingFeeRow struct {
	Student       *models.Student `json:"student"`
	ExpectedFee   float64         `json:"expected_fee"`
	PaidAmount    float64         `json:"paid_amount"`
	PendingAmount float64         `json:"pending_amount"`
	Status        string          `json:"status"`
}

// GetPendingFees computes, per active student, the scheduled tuition for
// their class grade against what was paid toward the given fee month.
// Students whose class has no tuition schedule expect zero and come back as
// paid only if nothing is outstanding.
func GetPendingFees(db *sql.DB, feeMonth string) ([]*PendingFeeRow, error) {
	query := `
		SELECT s.id, s.student_code, s.name, s.guardian_name, s.contact, s.class_grade,
		       s.enrollment_date, s.status, s.created_at,
		       COALESCE(fs.amount, 0) AS expected,
		       COALESCE(p.paid, 0) AS paid
		FROM students s
		LEFT JOIN fee_structures fs
			ON fs.class_grade = s.class_grade AND fs.fee_type = 'tuition'
		LEFT JOIN (
			SELECT student_id, SUM(amount_paid) AS paid
			FROM payments
			WHERE fee_month = $1 AND fee_type = 'tuition'
			GROUP BY student_id
		) p ON p.student_id = s.id
		WHERE s.status = 'active'
		ORDER BY s.name`

	rows, err := db.Query(query, feeMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []*PendingFeeRow
	for rows.Next() {
		s := &models.Student{}
		var expected, paid float64
		err := rows.Scan(&s.ID, &s.StudentCode, &s.Name, &s.GuardianName, &s.Contact,
			&s.ClassGrade, &s.EnrollmentDate, &s.Status, &s.CreatedAt,
			&expected, &paid)
		if err != nil {
			continue
		}

		outstanding := expected - paid
		if outstanding < 0 {
			outstanding = 0
		}
		status := "unpaid"
		switch {
		case paid >= expected:
			status = "paid"
		case paid > 0:
			status = "partial"
		}

		pending = append(pending, &PendingFeeRow{
			Student:       s,
			ExpectedFee:   expected,
			PaidAmount:    paid,
			PendingAmount: outstanding,
			Status:        status,
		})
	}
	return pending, rows.Err()
}

// GetCollectedTotal sums fee payments received for a fee month.
func GetCollectedTotal(db *sql.DB, feeMonth string) (float64, error) {
	var total float64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(amount_paid), 0) FROM payments WHERE fee_month = $1`,
		feeMonth).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum collections: %v", err)
	}
	return total, nil
}
