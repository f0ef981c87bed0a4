package rules

import (
	"strings"

	"banca/lotteries"
	"banca/models"
)

// CombinationRules matches the bet's combination key against the draw's
// winning key. The payout was fixed at placement time and stored on the item,
// so it is read back rather than recomputed.
type CombinationRules struct{}

func (CombinationRules) Evaluate(item models.BetItem, draw models.DrawResult, _ lotteries.PrizeTable) lotteries.Outcome {
	winning := strings.TrimSpace(draw.WinningKey)
	if winning == "" {
		return lotteries.Outcome{Gap: true}
	}
	if DeriveKey(item.Selection) != winning {
		return lotteries.Outcome{}
	}

	multiplier := item.Prize
	if item.Amount.IsPositive() {
		multiplier = item.Prize.Div(item.Amount)
	}
	return lotteries.Outcome{
		Winner:     true,
		Multiplier: multiplier,
		Payout:     item.Prize,
		Label:      "combination",
	}
}

func init() {
	lotteries.Register(lotteries.FamilyCombination, CombinationRules{})
}
