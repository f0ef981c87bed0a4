package rules

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"banca/lotteries"
	"banca/models"
)

var (
	exactMultiplier    = decimal.NewFromInt(70)
	neighborMultiplier = decimal.NewFromInt(5)
)

// AdjacencyRules pays 70x on an exact two-digit match and 5x on the
// immediate neighbors. The field does not wrap: 00 has no previous number
// and 99 has no next, so only the existing side is checked.
type AdjacencyRules struct{}

func (AdjacencyRules) Evaluate(item models.BetItem, draw models.DrawResult, _ lotteries.PrizeTable) lotteries.Outcome {
	selection, ok := normalize2(item.Selection)
	if !ok {
		return lotteries.Outcome{}
	}
	winning, ok := normalize2(draw.WinningNumber)
	if !ok {
		return lotteries.Outcome{Gap: true}
	}

	if selection == winning {
		return lotteries.Outcome{
			Winner:     true,
			Multiplier: exactMultiplier,
			Payout:     item.Amount.Mul(exactMultiplier),
			Label:      "exact 70x",
		}
	}

	w, _ := strconv.Atoi(winning)
	if w > 0 && selection == fmt.Sprintf("%02d", w-1) {
		return neighborOutcome(item)
	}
	if w < 99 && selection == fmt.Sprintf("%02d", w+1) {
		return neighborOutcome(item)
	}

	return lotteries.Outcome{}
}

func neighborOutcome(item models.BetItem) lotteries.Outcome {
	return lotteries.Outcome{
		Winner:     true,
		Multiplier: neighborMultiplier,
		Payout:     item.Amount.Mul(neighborMultiplier),
		Label:      "neighbor 5x",
	}
}

func init() {
	lotteries.Register(lotteries.FamilyAdjacency, AdjacencyRules{})
}
