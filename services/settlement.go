package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"banca/lotteries"
	"banca/models"
)

const settleBatchSize = 500

type SettlementResult struct {
	LotteryCode string          `json:"lottery_code"`
	DrawDate    time.Time       `json:"draw_date"`
	Evaluated   int             `json:"evaluated"`
	Winners     int             `json:"winners"`
	Losers      int             `json:"losers"`
	Gaps        int             `json:"gaps"`
	RowsMarked  int64           `json:"rows_marked"`
	TotalRaised decimal.Decimal `json:"total_raised"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
}

// SettleDraw classifies every still-active item of the draw and marks winners
// and losers through status-guarded batch updates. Running it twice for the
// same draw is a no-op the second time: settled items are no longer active,
// and a racing duplicate observes zero affected rows. The three read/mark
// steps are deliberately not one transaction; the guard on the updates is
// what keeps concurrent attempts safe.
func SettleDraw(db *gorm.DB, draw *models.DrawResult) (*SettlementResult, error) {
	var lottery models.Lottery
	err := withRetry(func() error {
		return db.Preload("PrizeTable").Where("code = ?", draw.LotteryCode).First(&lottery).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownLottery
		}
		return nil, fmt.Errorf("load lottery %s: %w", draw.LotteryCode, err)
	}

	ruleset := lotteries.Get(lottery.Family)
	if ruleset == nil {
		return nil, ErrUnknownFamily
	}
	table := lotteries.TableFor(lottery.PrizeTable)

	dayStart := startOfDay(draw.DrawDate)
	dayEnd := endOfDay(draw.DrawDate)

	var items []models.BetItem
	err = withRetry(func() error {
		items = nil
		return db.Where("lottery_code = ? AND status = ?", draw.LotteryCode, models.ItemActive).
			Where("draw_date BETWEEN ? AND ?", dayStart, dayEnd).
			Find(&items).Error
	})
	if err != nil {
		return nil, fmt.Errorf("load eligible items: %w", err)
	}

	result := &SettlementResult{
		LotteryCode: draw.LotteryCode,
		DrawDate:    draw.DrawDate,
		TotalRaised: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}

	if len(items) == 0 {
		log.Printf("ℹ️ settle %s %s: no active items, nothing to do", draw.LotteryCode, draw.DrawDate.Format("2006-01-02"))
		if draw.SettledAt == nil {
			now := time.Now()
			draw.SettledAt = &now
			if err := withRetry(func() error { return db.Save(draw).Error }); err != nil {
				return nil, fmt.Errorf("stamp settled draw: %w", err)
			}
		}
		return result, nil
	}

	var (
		winnerIDs []uint
		payouts   []decimal.Decimal
		labels    []string
		loserIDs  []uint
	)

	for _, item := range items {
		outcome := ruleset.Evaluate(item, *draw, table)
		result.Evaluated++
		result.TotalRaised = result.TotalRaised.Add(item.Amount)

		if outcome.Gap {
			result.Gaps++
			log.Printf("⚠️ settle %s: no prize configuration for item %d (%q), marked loser", draw.LotteryCode, item.ID, item.Selection)
		}

		if outcome.Winner {
			winnerIDs = append(winnerIDs, item.ID)
			payouts = append(payouts, outcome.Payout)
			labels = append(labels, outcome.Label)
			result.TotalPaid = result.TotalPaid.Add(outcome.Payout)
		} else {
			loserIDs = append(loserIDs, item.ID)
		}
	}

	marked, err := MarkWinners(db, winnerIDs, payouts, labels)
	if err != nil {
		return nil, fmt.Errorf("mark winners: %w", err)
	}
	result.Winners = len(winnerIDs)
	result.RowsMarked = marked

	if marked == 0 && len(winnerIDs) > 0 {
		// A concurrent settlement got there first; not an error.
		log.Printf("ℹ️ settle %s %s: duplicate settlement attempt, zero rows affected", draw.LotteryCode, draw.DrawDate.Format("2006-01-02"))
		return result, nil
	}

	lost, err := markLosers(db, loserIDs)
	if err != nil {
		return nil, fmt.Errorf("mark losers: %w", err)
	}
	result.Losers = len(loserIDs)
	result.RowsMarked += lost

	now := time.Now()
	draw.TotalRaised = result.TotalRaised
	draw.TotalPaid = result.TotalPaid
	draw.SettledAt = &now
	if err := withRetry(func() error { return db.Save(draw).Error }); err != nil {
		return nil, fmt.Errorf("save draw audit totals: %w", err)
	}

	return result, nil
}

// MarkWinners updates status, payout and payout label for every row that is
// still active, as one statement per batch: parallel slices of ids, prizes
// and descriptions, all three fields set atomically per row.
func MarkWinners(db *gorm.DB, ids []uint, prizes []decimal.Decimal, descriptions []string) (int64, error) {
	if len(ids) != len(prizes) || len(ids) != len(descriptions) {
		return 0, fmt.Errorf("mark winners: parallel arrays must match: %d ids, %d prizes, %d descriptions", len(ids), len(prizes), len(descriptions))
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var affected int64
	for start := 0; start < len(ids); start += settleBatchSize {
		end := start + settleBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		n, err := markWinnerBatch(db, ids[start:end], prizes[start:end], descriptions[start:end])
		if err != nil {
			return affected, err
		}
		affected += n
	}
	return affected, nil
}

// MarkClassicWinners and MarkAdjacencyWinners are the two settlement entry
// points the dashboard calls per family; both run the same guarded update.
func MarkClassicWinners(db *gorm.DB, ids []uint, prizes []decimal.Decimal, descriptions []string) (int64, error) {
	return MarkWinners(db, ids, prizes, descriptions)
}

func MarkAdjacencyWinners(db *gorm.DB, ids []uint, prizes []decimal.Decimal, descriptions []string) (int64, error) {
	return MarkWinners(db, ids, prizes, descriptions)
}

func markWinnerBatch(db *gorm.DB, ids []uint, prizes []decimal.Decimal, descriptions []string) (int64, error) {
	var sb strings.Builder
	args := make([]interface{}, 0, 4*len(ids)+4)

	sb.WriteString("UPDATE bet_items SET status = ?, updated_at = ?, payout = CASE id")
	args = append(args, models.ItemWinner, time.Now())
	for i, id := range ids {
		sb.WriteString(" WHEN ? THEN ?")
		args = append(args, id, prizes[i])
	}
	sb.WriteString(" END, payout_label = CASE id")
	for i, id := range ids {
		sb.WriteString(" WHEN ? THEN ?")
		args = append(args, id, descriptions[i])
	}
	sb.WriteString(" END WHERE id IN ? AND status = ?")
	args = append(args, ids, models.ItemActive)

	var affected int64
	err := withRetry(func() error {
		res := db.Exec(sb.String(), args...)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func markLosers(db *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var affected int64
	for start := 0; start < len(ids); start += settleBatchSize {
		end := start + settleBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch := ids[start:end]
		err := withRetry(func() error {
			res := db.Model(&models.BetItem{}).
				Where("id IN ? AND status = ?", batch, models.ItemActive).
				Update("status", models.ItemLoser)
			affected += res.RowsAffected
			return res.Error
		})
		if err != nil {
			return affected, err
		}
	}
	return affected, nil
}

// MarkItemsPaid moves settled winners to paid, guarded the same way so an
// item is never paid twice.
func MarkItemsPaid(db *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var affected int64
	err := withRetry(func() error {
		res := db.Model(&models.BetItem{}).
			Where("id IN ? AND status = ?", ids, models.ItemWinner).
			Update("status", models.ItemPaid)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
