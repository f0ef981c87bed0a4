package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banca/lotteries"
	"banca/models"
)

func item(selection string, amount int64) models.BetItem {
	return models.BetItem{Selection: selection, Amount: decimal.NewFromInt(amount)}
}

func TestAdjacencyExactMatch(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "45"}

	out := AdjacencyRules{}.Evaluate(item("45", 10), draw, nil)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(70).Equal(out.Multiplier))
	assert.True(t, decimal.NewFromInt(700).Equal(out.Payout))
	assert.Equal(t, "exact 70x", out.Label)
}

func TestAdjacencyNeighbors(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "45"}

	for _, selection := range []string{"44", "46"} {
		out := AdjacencyRules{}.Evaluate(item(selection, 10), draw, nil)
		require.True(t, out.Winner, selection)
		assert.True(t, decimal.NewFromInt(5).Equal(out.Multiplier), selection)
		assert.True(t, decimal.NewFromInt(50).Equal(out.Payout), selection)
	}

	out := AdjacencyRules{}.Evaluate(item("43", 10), draw, nil)
	assert.False(t, out.Winner)
	assert.True(t, out.Payout.IsZero())
}

func TestAdjacencyNoWrapAtLowerBound(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "00"}

	out := AdjacencyRules{}.Evaluate(item("99", 10), draw, nil)
	assert.False(t, out.Winner, "99 must not wrap around to win on 00")

	out = AdjacencyRules{}.Evaluate(item("01", 10), draw, nil)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(5).Equal(out.Multiplier))
}

func TestAdjacencyNoWrapAtUpperBound(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "99"}

	out := AdjacencyRules{}.Evaluate(item("00", 10), draw, nil)
	assert.False(t, out.Winner, "00 must not wrap around to win on 99")

	out = AdjacencyRules{}.Evaluate(item("98", 10), draw, nil)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(5).Equal(out.Multiplier))
}

func TestAdjacencyNormalizesModulo100(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "45"}

	out := AdjacencyRules{}.Evaluate(item("145", 10), draw, nil)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(70).Equal(out.Multiplier))
}

func TestAdjacencyNonNumericSelectionLoses(t *testing.T) {
	draw := models.DrawResult{WinningNumber: "45"}

	out := AdjacencyRules{}.Evaluate(item("abc", 10), draw, nil)
	assert.False(t, out.Winner)
}

func TestClassicWinnerUsesPrizeTable(t *testing.T) {
	table := lotteries.PrizeTable{
		"07": {Multiplier: decimal.NewFromInt(40), AnimalName: "Rabbit"},
	}

	out := ClassicRules{}.Evaluate(item("07", 10), models.DrawResult{WinningNumber: "07"}, table)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(400).Equal(out.Payout))
	assert.Equal(t, "Rabbit 40x", out.Label)

	out = ClassicRules{}.Evaluate(item("07", 10), models.DrawResult{WinningNumber: "08"}, table)
	assert.False(t, out.Winner)
	assert.True(t, out.Payout.IsZero())
}

func TestClassicMissingPrizeRowIsConfigurationGap(t *testing.T) {
	out := ClassicRules{}.Evaluate(item("07", 10), models.DrawResult{WinningNumber: "07"}, lotteries.PrizeTable{})
	assert.False(t, out.Winner, "a configuration gap must settle as a loser, not an error")
	assert.True(t, out.Gap)
	assert.True(t, out.Payout.IsZero())
}

func TestCombinationMatchesDerivedKey(t *testing.T) {
	it := item("1,2,3", 10)
	it.Prize = decimal.NewFromInt(250)

	out := CombinationRules{}.Evaluate(it, models.DrawResult{WinningKey: "01-02-03"}, nil)
	require.True(t, out.Winner)
	assert.True(t, decimal.NewFromInt(250).Equal(out.Payout), "payout is read from the stored prize")
	assert.True(t, decimal.NewFromInt(25).Equal(out.Multiplier))

	out = CombinationRules{}.Evaluate(it, models.DrawResult{WinningKey: "01-02-04"}, nil)
	assert.False(t, out.Winner)
}

func TestCombinationProvidedKeyUsedAsIs(t *testing.T) {
	it := item("01-02-03", 10)
	it.Prize = decimal.NewFromInt(250)

	out := CombinationRules{}.Evaluate(it, models.DrawResult{WinningKey: "01-02-03"}, nil)
	assert.True(t, out.Winner)
}

func TestCombinationMissingWinningKeyIsGap(t *testing.T) {
	out := CombinationRules{}.Evaluate(item("1,2,3", 10), models.DrawResult{}, nil)
	assert.False(t, out.Winner)
	assert.True(t, out.Gap)
}

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, "01-02-03", DeriveKey("1,2,3"))
	assert.Equal(t, "01-02-03", DeriveKey("1 2 3"))
	assert.Equal(t, "05-17", DeriveKey("5, 17"))
	assert.Equal(t, "01-02-03", DeriveKey("01-02-03"))
}

func TestRegistryDispatch(t *testing.T) {
	assert.NotNil(t, lotteries.Get("classic"))
	assert.NotNil(t, lotteries.Get("adjacency"))
	assert.NotNil(t, lotteries.Get("combination"))
	assert.Nil(t, lotteries.Get("roulette"))
}
