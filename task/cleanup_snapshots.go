package tasks

import (
	"log"
	"os"
	"strconv"
	"time"

	"banca/database"
	"banca/models"
)

const defaultRetentionDays = 90

// CleanupOldSnapshots drops materialized reports past the retention window.
func CleanupOldSnapshots() {
	days := defaultRetentionDays
	if v := os.Getenv("SNAPSHOT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	result := database.DB.
		Where("created_at < ?", cutoff).
		Delete(&models.ReportSnapshot{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old snapshots:", result.Error)
	} else {
		log.Printf("✅ Deleted %d snapshots older than %d days\n", result.RowsAffected, days)
	}
}
