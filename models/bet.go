package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BetActive    = "active"
	BetCancelled = "cancelled"
)

const (
	ItemActive    = "active"
	ItemWinner    = "winner"
	ItemLoser     = "loser"
	ItemCancelled = "cancelled"
	ItemPaid      = "paid"
)

type Bet struct {
	gorm.Model

	ResellerCode string          `gorm:"index;size:32" json:"reseller_code"`
	Amount       decimal.Decimal `gorm:"type:numeric(18,4);default:0" json:"amount"`
	Status       string          `gorm:"index;size:16;default:active" json:"status"`

	Items []BetItem `gorm:"foreignKey:BetID"`
}

// BetItem is a single wager inside a bet. Status moves exactly once from
// active to winner/loser/cancelled, and a winner may later move to paid.
type BetItem struct {
	gorm.Model

	BetID        uint      `gorm:"index" json:"bet_id"`
	ResellerCode string    `gorm:"index;size:32" json:"reseller_code"`
	LotteryCode  string    `gorm:"index;size:32" json:"lottery_code"`
	Family       string    `gorm:"index;size:16" json:"family"`
	DrawDate     time.Time `gorm:"index" json:"draw_date"`

	Selection string          `gorm:"size:64" json:"selection"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,4);default:0" json:"amount"`

	// Prize is the payout fixed at placement time. Only the combination
	// family uses it; the other families compute payout at settlement.
	Prize decimal.Decimal `gorm:"type:numeric(18,4);default:0" json:"prize"`

	Payout      decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"payout"`
	PayoutLabel string              `gorm:"size:64" json:"payout_label"`
	Status      string              `gorm:"index;size:16;default:active" json:"status"`
}
