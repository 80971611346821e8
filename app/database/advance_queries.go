package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const advanceColumns = `id, teacher_id, month, amount, date_given, payment_mode, notes, created_at`

func scanAdvance(row interface{ Scan(...interface{}) error }) (*models.TeacherAdvance, error) {
	a := &models.TeacherAdvance{}
	err := row.Scan(&a.ID, &a.TeacherID, &a.Month, &a.Amount, &a.DateGiven,
		&a.PaymentMode, &a.Notes, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetAdvances returns advances, optionally filtered by teacher and/or target
// month, newest first.
func GetAdvances(db *sql.DB, teacherID, month string) ([]*models.TeacherAdvance, error) {
	query := `SELECT ` + advanceColumns + ` FROM teacher_advances WHERE 1=1`
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

	var advances []*models.TeacherAdvance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			continue
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

// CreateAdvance records an advance salary payout against its target month.
func CreateAdvance(db *sql.DB, a *models.TeacherAdvance) error {
	a.ID = uuid.NewString()
	if a.PaymentMode == "" {
		a.PaymentMode = models.PaymentCash
	}
	return db.QueryRow(`
		INSERT INTO teacher_advances (id, teacher_id, month, amount, date_given, payment_mode, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		a.ID, a.TeacherID, a.Month, a.Amount, a.DateGiven, a.PaymentMode, a.Notes,
	).Scan(&a.CreatedAt)
}

// DeleteAdvance removes an advance record.
func DeleteAdvance(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM teacher_advances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
