package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Lottery struct {
	gorm.Model

	Code     string `gorm:"uniqueIndex;size:32" json:"code"`
	Name     string `gorm:"size:64" json:"name"`
	Family   string `gorm:"index;size:16" json:"family"`
	Currency string `gorm:"size:8" json:"currency"`

	PrizeTable []PrizeEntry `gorm:"foreignKey:LotteryCode;references:Code"`
}

// PrizeEntry is one row of a lottery's prize table: the multiplier paid on a
// playable number, plus the display name used on tickets (animal lotteries).
type PrizeEntry struct {
	gorm.Model

	LotteryCode string          `gorm:"index;size:32" json:"lottery_code"`
	Number      string          `gorm:"size:32;index" json:"number"`
	AnimalName  string          `gorm:"size:32" json:"animal_name"`
	Multiplier  decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"multiplier"`
}
