package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DrawResult records one draw of a lottery. TotalRaised/TotalPaid are audit
// figures written at settlement; they are recomputable from the bet items.
type DrawResult struct {
	gorm.Model

	LotteryCode   string          `gorm:"index;size:32" json:"lottery_code"`
	DrawDate      time.Time       `gorm:"index" json:"draw_date"`
	WinningNumber string          `gorm:"size:8" json:"winning_number"`
	WinningKey    string          `gorm:"size:64" json:"winning_key"`
	TotalRaised   decimal.Decimal `gorm:"type:numeric(18,4);default:0" json:"total_raised"`
	TotalPaid     decimal.Decimal `gorm:"type:numeric(18,4);default:0" json:"total_paid"`
	SettledAt     *time.Time      `gorm:"index" json:"settled_at"`
}
