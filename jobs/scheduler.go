package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"banca/database"
	"banca/models"
	"banca/services"
	tasks "banca/task"
)

// StartScheduler wires the recurring work: retrying recorded draws whose
// settlement never completed, materializing the nightly report, and pruning
// old snapshots.
func StartScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 5m", SweepPendingDraws); err != nil {
		log.Printf("❌ failed to schedule pending-draw sweep: %v", err)
	}

	if _, err := c.AddFunc("15 0 * * *", func() {
		if _, err := services.BuildSnapshot(database.DB, services.PeriodMonth, time.Now()); err != nil {
			log.Printf("❌ nightly snapshot build failed: %v", err)
		}
	}); err != nil {
		log.Printf("❌ failed to schedule snapshot build: %v", err)
	}

	if _, err := c.AddFunc("45 0 * * *", tasks.CleanupOldSnapshots); err != nil {
		log.Printf("❌ failed to schedule snapshot cleanup: %v", err)
	}

	c.Start()
	return c
}

// SweepPendingDraws retries draws that were recorded but never finished
// settling. Draws for different lotteries settle concurrently; re-settling
// the same draw is safe because the updates are status-guarded.
func SweepPendingDraws() {
	var draws []models.DrawResult
	if err := database.DB.Where("settled_at IS NULL").Find(&draws).Error; err != nil {
		log.Printf("❌ pending draw sweep failed: %v", err)
		return
	}

	now := time.Now()
	for i := range draws {
		draw := draws[i]
		if draw.DrawDate.After(now) {
			continue
		}
		go func(d models.DrawResult) {
			if _, err := services.SettleDraw(database.DB, &d); err != nil {
				log.Printf("❌ settle %s %s failed: %v", d.LotteryCode, d.DrawDate.Format("2006-01-02"), err)
			}
		}(draw)
	}
}
