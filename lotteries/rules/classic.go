package rules

import (
	"fmt"
	"strings"

	"banca/lotteries"
	"banca/models"
)

// ClassicRules pays the lottery's configured multiplier on an exact number
// match. A winning number with no prize row is a configuration gap: the item
// loses instead of failing the settlement.
type ClassicRules struct{}

func (ClassicRules) Evaluate(item models.BetItem, draw models.DrawResult, table lotteries.PrizeTable) lotteries.Outcome {
	selection := strings.TrimSpace(item.Selection)
	winning := strings.TrimSpace(draw.WinningNumber)

	if selection == "" || selection != winning {
		return lotteries.Outcome{}
	}

	row, ok := table[winning]
	if !ok {
		return lotteries.Outcome{Gap: true}
	}

	label := strings.TrimSpace(fmt.Sprintf("%s %sx", row.AnimalName, row.Multiplier.String()))
	return lotteries.Outcome{
		Winner:     true,
		Multiplier: row.Multiplier,
		Payout:     item.Amount.Mul(row.Multiplier),
		Label:      label,
	}
}

func init() {
	lotteries.Register(lotteries.FamilyClassic, ClassicRules{})
}
