package models

import "gorm.io/gorm"

const (
	RankPointOfSale = "pos"
	RankAgency      = "agency"
	RankDistributor = "distributor"
)

type Reseller struct {
	gorm.Model

	Code           string  `gorm:"uniqueIndex;size:32" json:"code"`
	Name           string  `gorm:"size:64" json:"name"`
	Rank           string  `gorm:"index;size:16" json:"rank"`
	ParentCode     *string `gorm:"index;size:32" json:"parent_code"`
	ShareOnSales   float64 `json:"share_on_sales"`
	ShareOnProfits float64 `json:"share_on_profits"`
	SecretKey      string  `gorm:"size:128" json:"secret_key"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`

	Bets []Bet `gorm:"foreignKey:ResellerCode;references:Code"`
}
