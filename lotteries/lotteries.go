package lotteries

import (
	"strings"

	"github.com/shopspring/decimal"

	"banca/models"
)

// Family is the closed set of lottery rule families. Every lottery and bet
// item carries one of these; settlement dispatches through the registry below.
type Family string

const (
	FamilyClassic     Family = "classic"
	FamilyAdjacency   Family = "adjacency"
	FamilyCombination Family = "combination"
)

// PrizeRow is one configured number of a lottery: its multiplier and the
// display name printed on tickets.
type PrizeRow struct {
	Multiplier decimal.Decimal
	AnimalName string
}

// PrizeTable maps a playable number to its configured prize row.
type PrizeTable map[string]PrizeRow

// Outcome classifies a single bet item against a draw. Gap marks a
// configuration gap: the item matched the draw but no prize row exists, so it
// is treated as a loser rather than blocking the rest of the settlement.
type Outcome struct {
	Winner     bool
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	Label      string
	Gap        bool
}

// Ruleset decides winner/loser and the payout for one family. Implementations
// are pure: no store access, no logging.
type Ruleset interface {
	Evaluate(item models.BetItem, draw models.DrawResult, table PrizeTable) Outcome
}

var rulesets = map[Family]Ruleset{}

func Register(family Family, rs Ruleset) {
	rulesets[Family(strings.ToLower(string(family)))] = rs
}

func Get(family string) Ruleset {
	return rulesets[Family(strings.ToLower(family))]
}

// TableFor builds the lookup table for a lottery's prize entries.
func TableFor(entries []models.PrizeEntry) PrizeTable {
	table := make(PrizeTable, len(entries))
	for _, e := range entries {
		table[strings.TrimSpace(e.Number)] = PrizeRow{
			Multiplier: e.Multiplier,
			AnimalName: e.AnimalName,
		}
	}
	return table
}
