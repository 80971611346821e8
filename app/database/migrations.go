package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing and applies incremental
// updates. Every statement is idempotent so the app can run it on boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			cnic TEXT NOT NULL DEFAULT '',
			joining_date DATE NOT NULL DEFAULT CURRENT_DATE,
			monthly_salary NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_loans (
			id UUID PRIMARY KEY,
			teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			amount NUMERIC NOT NULL,
			remaining NUMERIC NOT NULL,
			date_issued DATE NOT NULL DEFAULT CURRENT_DATE,
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			repayment_type TEXT NOT NULL DEFAULT 'manual',
			repayment_month TEXT,
			repayment_percentage NUMERIC,
			repayment_amount NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT remaining_within_amount CHECK (remaining >= 0 AND remaining <= amount)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_loans_teacher ON teacher_loans(teacher_id, status)`,
		`CREATE TABLE IF NOT EXISTS teacher_advances (
			id UUID PRIMARY KEY,
			teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			month TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			date_given DATE NOT NULL DEFAULT CURRENT_DATE,
			payment_mode TEXT NOT NULL DEFAULT 'cash',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_advances_month ON teacher_advances(teacher_id, month)`,
		`CREATE TABLE IF NOT EXISTS teacher_salaries (
			id UUID PRIMARY KEY,
			teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			month TEXT NOT NULL,
			base_salary NUMERIC NOT NULL DEFAULT 0,
			loan_deduction NUMERIC NOT NULL DEFAULT 0,
			advance_deduction NUMERIC NOT NULL DEFAULT 0,
			other_deduction NUMERIC NOT NULL DEFAULT 0,
			net_paid NUMERIC NOT NULL DEFAULT 0,
			custom_amount NUMERIC NOT NULL DEFAULT 0,
			date_paid DATE NOT NULL DEFAULT CURRENT_DATE,
			payment_mode TEXT NOT NULL DEFAULT 'cash',
			notes TEXT NOT NULL DEFAULT '',
			receipt_url TEXT NOT NULL DEFAULT '',
			proof_image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_salaries_month ON teacher_salaries(teacher_id, month)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			student_code TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			guardian_name TEXT NOT NULL DEFAULT '',
			contact TEXT NOT NULL DEFAULT '',
			class_grade TEXT NOT NULL,
			enrollment_date DATE NOT NULL DEFAULT CURRENT_DATE,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY,
			class_grade TEXT NOT NULL,
			fee_type TEXT NOT NULL,
			amount NUMERIC NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (class_grade, fee_type)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			fee_type TEXT NOT NULL,
			amount_paid NUMERIC NOT NULL DEFAULT 0,
			date DATE NOT NULL DEFAULT CURRENT_DATE,
			fee_month TEXT NOT NULL,
			receipt_number TEXT NOT NULL DEFAULT '',
			receipt_printed BOOLEAN NOT NULL DEFAULT false,
			payment_mode TEXT NOT NULL DEFAULT 'cash',
			notes TEXT NOT NULL DEFAULT '',
			collected_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_month ON payments(student_id, fee_month)`,
		`CREATE TABLE IF NOT EXISTS teacher_attendance (
			id UUID PRIMARY KEY,
			teacher_id UUID NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			time_in TIMESTAMPTZ,
			time_out TIMESTAMPTZ,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (teacher_id, date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
