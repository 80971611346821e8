package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

const attendanceColumns = `id, teacher_id, date, time_in, time_out, notes, created_at`

func scanAttendance(row interface{ Scan(...interface{}) error }) (*models.TeacherAttendance, error) {
	a := &models.TeacherAttendance{}
	err := row.Scan(&a.ID, &a.TeacherID, &a.Date, &a.TimeIn, &a.TimeOut,
		&a.Notes, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CheckInTeacher records a teacher's arrival for the day. Re-checking in on
// the same day keeps the original time-in.
func CheckInTeacher(db *sql.DB, teacherID string, date time.Time, at time.Time, notes string) (*models.TeacherAttendance, error) {
	row := db.QueryRow(`
		INSERT INTO teacher_attendance (id, teacher_id, date, time_in, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (teacher_id, date)
		DO UPDATE SET time_in = COALESCE(teacher_attendance.time_in, EXCLUDED.time_in)
		RETURNING `+attendanceColumns,
		uuid.NewString(), teacherID, date, at, notes)
	return scanAttendance(row)
}

// CheckOutTeacher records a teacher's departure for the day.
func CheckOutTeacher(db *sql.DB, teacherID string, date time.Time, at time.Time) (*models.TeacherAttendance, error) {
	row := db.QueryRow(`
		UPDATE teacher_attendance
		SET time_out = $3
		WHERE teacher_id = $1 AND date = $2
		RETURNING `+attendanceColumns,
		teacherID, date, at)
	return scanAttendance(row)
}

// GetAttendance returns attendance rows within [from, to], optionally for a
// single teacher, most recent first.
func GetAttendance(db *sql.DB, teacherID string, from, to time.Time) ([]*models.TeacherAttendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM teacher_attendance WHERE date >= $1 AND date <= $2`
	args := []interface{}{from, to}
	if teacherID != "" {
		query += ` AND teacher_id = $3`
		args = append(args, teacherID)
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.TeacherAttendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			continue
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
