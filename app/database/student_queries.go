package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const studentColumns = `id, student_code, name, guardian_name, contact, class_grade,
	enrollment_date, status, created_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.StudentCode, &s.Name, &s.GuardianName, &s.Contact,
		&s.ClassGrade, &s.EnrollmentDate, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudents returns students ordered by name, optionally restricted to a
// class grade and/or active-only, with an optional name/code/guardian search.
func GetStudents(db *sql.DB, classGrade, search string, activeOnly bool) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if activeOnly {
		query += ` AND status = 'active'`
	}
	if classGrade != "" {
		query += fmt.Sprintf(` AND class_grade = $%d`, argIndex)
		args = append(args, classGrade)
		argIndex++
	}
	if search != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR student_code ILIKE $%d OR guardian_name ILIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns a single student or sql.ErrNoRows.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	row := db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// CreateStudent inserts a student, generating a student code when none is
// supplied.
func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = uuid.NewString()
	if s.Status == "" {
		s.Status = models.StudentActive
	}
	if s.StudentCode == "" {
		code, err := nextStudentCode(db)
		if err != nil {
			return err
		}
		s.StudentCode = code
	}
	return db.QueryRow(`
		INSERT INTO students (id, student_code, name, guardian_name, contact, class_grade,
			enrollment_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		s.ID, s.StudentCode, s.Name, s.GuardianName, s.Contact, s.ClassGrade,
		s.EnrollmentDate, s.Status,
	).Scan(&s.CreatedAt)
}

func nextStudentCode(db *sql.DB) (string, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return "", err
	}
	return fmt.Sprintf("STU-%04d", count+1), nil
}

// UpdateStudent overwrites the editable fields of a student record.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	result, err := db.Exec(`
		UPDATE students
		SET student_code = $2, name = $3, guardian_name = $4, contact = $5,
		    class_grade = $6, enrollment_date = $7, status = $8
		WHERE id = $1`,
		s.ID, s.StudentCode, s.Name, s.GuardianName, s.Contact,
		s.ClassGrade, s.EnrollmentDate, s.Status)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent removes a student and, through cascades, their payments.
func DeleteStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
