package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const teacherColumns = `id, name, contact, cnic, joining_date, monthly_salary, status, created_at`

func scanTeacher(row interface{ Scan(...interface{}) error }) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(&t.ID, &t.Name, &t.Contact, &t.CNIC, &t.JoiningDate,
		&t.MonthlySalary, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAllTeachers returns teachers ordered by name. When activeOnly is set,
// inactive teachers are excluded (payroll-run views use this).
func GetAllTeachers(db *sql.DB, activeOnly bool) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			continue
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetTeacherByID returns a single teacher or sql.ErrNoRows.
func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	row := db.QueryRow(`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id)
	return scanTeacher(row)
}

// CreateTeacher inserts a teacher and fills in its generated fields.
func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = models.TeacherActive
	}
	return db.QueryRow(`
		INSERT INTO teachers (id, name, contact, cnic, joining_date, monthly_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		t.ID, t.Name, t.Contact, t.CNIC, t.JoiningDate, t.MonthlySalary, t.Status,
	).Scan(&t.CreatedAt)
}

// UpdateTeacher overwrites the editable fields of a teacher record.
func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	result, err := db.Exec(`
		UPDATE teachers
		SET name = $2, contact = $3, cnic = $4, joining_date = $5,
		    monthly_salary = $6, status = $7
		WHERE id = $1`,
		t.ID, t.Name, t.Contact, t.CNIC, t.JoiningDate, t.MonthlySalary, t.Status)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTeacher removes a teacher and, through cascades, their loans,
// advances, salaries and attendance.
func DeleteTeacher(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
