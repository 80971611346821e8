package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// backupTables lists every table included in the export, in dump order.
var backupTables = []string{
	"teachers",
	"teacher_loans",
	"teacher_advances",
	"teacher_salaries",
	"teacher_attendance",
	"students",
	"fee_structures",
	"payments",
}

// RunWeeklyBackup dumps every table to a dated JSON file under dir. The file
// is written atomically via a temp file so a crash never leaves a truncated
// backup behind.
func RunWeeklyBackup(db *sql.DB, dir string) error {
	log.Println("Starting weekly backup...")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %v", err)
	}

	dump := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
	}
	for _, table := range backupTables {
		rows, err := dumpTable(db, table)
		if err != nil {
			return fmt.Errorf("failed to dump %s: %v", table, err)
		}
		dump[table] = rows
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %v", err)
	}

	name := fmt.Sprintf("backup-%s.json", time.Now().Format("2006-01-02"))
	tmp := filepath.Join(dir, name+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %v", err)
	}
	final := filepath.Join(dir, name)
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("failed to finalize backup file: %v", err)
	}

	log.Printf("Weekly backup written to %s (%d tables, %d bytes)", final, len(backupTables), len(data))
	return nil
}

// dumpTable reads a whole table into generic column maps.
func dumpTable(db *sql.DB, table string) ([]map[string]interface{}, error) {
	rows, err := db.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				record[col] = string(v)
			default:
				record[col] = v
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// LatestBackupAge returns how long ago the newest backup file in dir was
// written, or false when no backup exists yet.
func LatestBackupAge(dir string) (time.Duration, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, false
	}

	var newest time.Time
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	if newest.IsZero() {
		return 0, false
	}
	return time.Since(newest), true
}
