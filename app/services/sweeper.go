package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/finance"
)

// StartAlertSweeper keeps stored alert priorities consistent with the
// current date. It subscribes to the watcher and, on every change to a
// user's alerts, reloads that user's alert snapshot and applies the
// corrections the priority rule calls for. Each correction is an
// independent fire-and-forget column update; failures are only logged
// because the next snapshot retries the same idempotent fix.
// The returned stop function releases the subscription.
func StartAlertSweeper(db *sql.DB, watcher *database.Watcher) func() {
	changes, cancel := watcher.Subscribe()

	go func() {
		log.Println("Alert priority sweeper started")
		for change := range changes {
			if change.Table != "alerts" {
				continue
			}
			SweepUserAlerts(db, change.UserID)
		}
	}()

	return cancel
}

// SweepUserAlerts loads one user's alerts and corrects any stale
// priorities.
func SweepUserAlerts(db *sql.DB, userID string) {
	alerts, err := database.GetAlerts(db, userID)
	if err != nil {
		log.Printf("Priority sweep: loading alerts for user %s: %v", userID, err)
		return
	}

	fixes := finance.SweepPriorities(alerts, time.Now())
	for _, fix := range fixes {
		go func(fix finance.PriorityFix) {
			if err := database.UpdateAlertPriority(db, fix.AlertID, fix.Priority); err != nil {
				log.Printf("Priority sweep: updating alert %s: %v", fix.AlertID, err)
			}
		}(fix)
	}
}

// SweepAllAlerts runs the priority sweep for every user with alerts. The
// scheduler calls this at day rollover, when priorities can change even
// though no row has.
func SweepAllAlerts(db *sql.DB) {
	userIDs, err := database.GetAlertUserIDs(db)
	if err != nil {
		log.Printf("Priority sweep: listing alert owners: %v", err)
		return
	}
	for _, userID := range userIDs {
		SweepUserAlerts(db, userID)
	}
}
