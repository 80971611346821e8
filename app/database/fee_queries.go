package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const feeStructureColumns = `id, class_grade, fee_type, amount, created_at`

func scanFeeStructure(row interface{ Scan(...interface{}) error }) (*models.FeeStructure, error) {
	f := &models.FeeStructure{}
	err := row.Scan(&f.ID, &f.ClassGrade, &f.FeeType, &f.Amount, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeeStructures returns all fee schedule rows ordered by class and type.
func GetFeeStructures(db *sql.DB) ([]*models.FeeStructure, error) {
	rows, err := db.Query(`
		SELECT ` + feeStructureColumns + ` FROM fee_structures ORDER BY class_grade, fee_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		f, err := scanFeeStructure(rows)
		if err != nil {
			continue
		}
		structures = append(structures, f)
	}
	return structures, rows.Err()
}

// GetFeeStructure returns the scheduled amount for one class grade and fee
// type, or sql.ErrNoRows when none is configured.
func GetFeeStructure(db *sql.DB, classGrade string, feeType models.FeeType) (*models.FeeStructure, error) {
	row := db.QueryRow(`
		SELECT `+feeStructureColumns+`
		FROM fee_structures
		WHERE class_grade = $1 AND fee_type = $2`, classGrade, feeType)
	return scanFeeStructure(row)
}

// UpsertFeeStructure creates or replaces the fee amount for a class grade and
// fee type. The schedule has one row per (class_grade, fee_type).
func UpsertFeeStructure(db *sql.DB, f *models.FeeStructure) error {
	f.ID = uuid.NewString()
	return db.QueryRow(`
		INSERT INTO fee_structures (id, class_grade, fee_type, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (class_grade, fee_type)
		DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id, created_at`,
		f.ID, f.ClassGrade, f.FeeType, f.Amount,
	).Scan(&f.ID, &f.CreatedAt)
}

// DeleteFeeStructure removes a fee schedule row.
func DeleteFeeStructure(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM fee_structures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
