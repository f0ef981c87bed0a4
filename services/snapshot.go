package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"banca/models"
)

const snapshotRankSize = 10

// SnapshotPayload is the materialized report body stored on a ReportSnapshot.
type SnapshotPayload struct {
	Period       string          `json:"period"`
	Window       Window          `json:"window"`
	Sales        decimal.Decimal `json:"sales"`
	Prizes       decimal.Decimal `json:"prizes"`
	PrevSales    decimal.Decimal `json:"prev_sales"`
	PrevPrizes   decimal.Decimal `json:"prev_prizes"`
	TrendPct     decimal.Decimal `json:"trend_pct"`
	TopResellers []ResellerRank  `json:"top_resellers"`
	TopNumbers   []NumberRank    `json:"top_numbers"`
	Hourly       []HourBucket    `json:"hourly,omitempty"`
}

// BuildSnapshot computes the report for the period once and persists it, so
// later reads need no recomputation.
func BuildSnapshot(db *gorm.DB, period string, now time.Time) (*models.ReportSnapshot, error) {
	w, err := ResolveWindow(period, nil, nil, now)
	if err != nil {
		return nil, err
	}

	totals, err := AggregateLedger(db, nil, w, "")
	if err != nil {
		return nil, err
	}
	prevTotals, err := AggregateLedger(db, nil, PreviousWindow(w), "")
	if err != nil {
		return nil, err
	}

	payload := SnapshotPayload{
		Period:     period,
		Window:     w,
		Sales:      decimal.Zero,
		Prizes:     decimal.Zero,
		PrevSales:  decimal.Zero,
		PrevPrizes: decimal.Zero,
		TrendPct:   decimal.Zero,
	}
	for _, t := range totals {
		payload.Sales = payload.Sales.Add(t.Sales)
		payload.Prizes = payload.Prizes.Add(t.Prizes)
	}
	for _, t := range prevTotals {
		payload.PrevSales = payload.PrevSales.Add(t.Sales)
		payload.PrevPrizes = payload.PrevPrizes.Add(t.Prizes)
	}
	if payload.PrevSales.IsPositive() {
		payload.TrendPct = payload.Sales.Sub(payload.PrevSales).Div(payload.PrevSales).Mul(oneHundred)
	}

	if payload.TopResellers, err = TopResellers(db, nil, w, "", snapshotRankSize); err != nil {
		return nil, err
	}
	if payload.TopNumbers, err = TopNumbers(db, nil, w, "", snapshotRankSize); err != nil {
		return nil, err
	}
	if period == PeriodToday {
		if payload.Hourly, err = HourlySales(db, nil, w, ""); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot payload: %w", err)
	}

	snapshot := &models.ReportSnapshot{
		Period:      period,
		WindowStart: w.Start,
		WindowEnd:   w.End,
		Payload:     datatypes.JSON(raw),
	}
	if err := withRetry(func() error { return db.Create(snapshot).Error }); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	return snapshot, nil
}

// LoadSnapshot fetches a previously materialized report by id.
func LoadSnapshot(db *gorm.DB, id uint) (*models.ReportSnapshot, error) {
	var snapshot models.ReportSnapshot
	err := withRetry(func() error { return db.First(&snapshot, id).Error })
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
