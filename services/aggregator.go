package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"banca/models"
)

// LedgerTotals is the aggregated money view of one reseller in a window.
type LedgerTotals struct {
	Sales  decimal.Decimal `json:"sales"`
	Prizes decimal.Decimal `json:"prizes"`
}

type NumberRank struct {
	Selection string          `json:"selection"`
	Wagered   decimal.Decimal `json:"wagered"`
}

type ResellerRank struct {
	ResellerCode string          `json:"reseller_code"`
	Sales        decimal.Decimal `json:"sales"`
}

type HourBucket struct {
	Hour  int             `json:"hour"`
	Sales decimal.Decimal `json:"sales"`
}

// withRetry runs a store call and retries it once before surfacing the error.
func withRetry(op func() error) error {
	if err := op(); err == nil {
		return nil
	}
	return op()
}

// AggregateLedger sums sales and prizes per reseller inside the window.
// Scope semantics: a nil slice means no filter; an empty non-nil slice means
// the caller can see no resellers at all and short-circuits to zero totals
// without touching the store. Errors are surfaced, never reported as zeros.
func AggregateLedger(db *gorm.DB, scope []string, w Window, family string) (map[string]LedgerTotals, error) {
	totals := map[string]LedgerTotals{}
	if scope != nil && len(scope) == 0 {
		return totals, nil
	}

	type row struct {
		ResellerCode string
		Total        decimal.Decimal
	}

	base := func() *gorm.DB {
		q := db.Model(&models.BetItem{}).
			Where("bet_items.created_at BETWEEN ? AND ?", w.Start, w.End)
		if family != "" {
			q = q.Where("family = ?", family)
		}
		if scope != nil {
			q = q.Where("reseller_code IN ?", scope)
		}
		return q
	}

	var sales []row
	err := withRetry(func() error {
		sales = nil
		return base().
			Select("reseller_code, COALESCE(SUM(amount), 0) AS total").
			Where("status <> ?", models.ItemCancelled).
			Group("reseller_code").
			Scan(&sales).Error
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}

	var prizes []row
	err = withRetry(func() error {
		prizes = nil
		return base().
			Select("reseller_code, COALESCE(SUM(payout), 0) AS total").
			Where("status IN ?", []string{models.ItemWinner, models.ItemPaid}).
			Group("reseller_code").
			Scan(&prizes).Error
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate prizes: %w", err)
	}

	for _, r := range sales {
		t := totals[r.ResellerCode]
		t.Sales = r.Total
		totals[r.ResellerCode] = t
	}
	for _, r := range prizes {
		t := totals[r.ResellerCode]
		t.Prizes = r.Total
		totals[r.ResellerCode] = t
	}
	return totals, nil
}

// HourlySales buckets non-cancelled wagers by calendar hour of day. Meant for
// today windows; bucketing happens in Go to stay portable across dialects.
func HourlySales(db *gorm.DB, scope []string, w Window, family string) ([]HourBucket, error) {
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h] = HourBucket{Hour: h, Sales: decimal.Zero}
	}
	if scope != nil && len(scope) == 0 {
		return buckets, nil
	}

	var items []models.BetItem
	err := withRetry(func() error {
		items = nil
		q := db.Model(&models.BetItem{}).
			Select("created_at, amount").
			Where("bet_items.created_at BETWEEN ? AND ?", w.Start, w.End).
			Where("status <> ?", models.ItemCancelled)
		if family != "" {
			q = q.Where("family = ?", family)
		}
		if scope != nil {
			q = q.Where("reseller_code IN ?", scope)
		}
		return q.Find(&items).Error
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate hourly sales: %w", err)
	}

	for _, item := range items {
		h := item.CreatedAt.Hour()
		buckets[h].Sales = buckets[h].Sales.Add(item.Amount)
	}
	return buckets, nil
}

// TopNumbers ranks the most wagered selections in the window.
func TopNumbers(db *gorm.DB, scope []string, w Window, family string, n int) ([]NumberRank, error) {
	if scope != nil && len(scope) == 0 {
		return []NumberRank{}, nil
	}

	var ranks []NumberRank
	err := withRetry(func() error {
		ranks = nil
		q := db.Model(&models.BetItem{}).
			Select("selection, COALESCE(SUM(amount), 0) AS wagered").
			Where("bet_items.created_at BETWEEN ? AND ?", w.Start, w.End).
			Where("status <> ?", models.ItemCancelled)
		if family != "" {
			q = q.Where("family = ?", family)
		}
		if scope != nil {
			q = q.Where("reseller_code IN ?", scope)
		}
		return q.Group("selection").
			Order("wagered DESC").
			Limit(n).
			Scan(&ranks).Error
	})
	if err != nil {
		return nil, fmt.Errorf("rank numbers: %w", err)
	}
	return ranks, nil
}

// TopResellers ranks resellers by sales in the window.
func TopResellers(db *gorm.DB, scope []string, w Window, family string, n int) ([]ResellerRank, error) {
	if scope != nil && len(scope) == 0 {
		return []ResellerRank{}, nil
	}

	var ranks []ResellerRank
	err := withRetry(func() error {
		ranks = nil
		q := db.Model(&models.BetItem{}).
			Select("reseller_code, COALESCE(SUM(amount), 0) AS sales").
			Where("bet_items.created_at BETWEEN ? AND ?", w.Start, w.End).
			Where("status <> ?", models.ItemCancelled)
		if family != "" {
			q = q.Where("family = ?", family)
		}
		if scope != nil {
			q = q.Where("reseller_code IN ?", scope)
		}
		return q.Group("reseller_code").
			Order("sales DESC").
			Limit(n).
			Scan(&ranks).Error
	})
	if err != nil {
		return nil, fmt.Errorf("rank resellers: %w", err)
	}
	return ranks, nil
}
