package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Shortly after midnight the calendar has moved on, so every
			// stored alert priority needs re-checking.
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")
				SweepAllAlerts(db)
			}
		}
	}()
}
