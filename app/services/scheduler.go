package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, backupDir string) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 11:30 PM on Sundays (23:30)
			if now.Weekday() == time.Sunday && now.Hour() == 23 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [Sun 23:30]...")

				// A backup written within the last day means this slot already ran.
				if age, ok := LatestBackupAge(backupDir); ok && age < 24*time.Hour {
					continue
				}
				if err := RunWeeklyBackup(db, backupDir); err != nil {
					log.Printf("Error running weekly backup: %v", err)
				}
			}
		}
	}()
}
