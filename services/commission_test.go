package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banca/models"
)

func strPtr(s string) *string { return &s }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testTree() []models.Reseller {
	return []models.Reseller{
		{Code: "1dist", Rank: models.RankDistributor, ShareOnSales: 30, ShareOnProfits: 25},
		{Code: "2agencyA", Rank: models.RankAgency, ParentCode: strPtr("1dist"), ShareOnSales: 15, ShareOnProfits: 20},
		{Code: "3posA1", Rank: models.RankPointOfSale, ParentCode: strPtr("2agencyA"), ShareOnSales: 10, ShareOnProfits: 0},
		{Code: "3posA2", Rank: models.RankPointOfSale, ParentCode: strPtr("2agencyA"), ShareOnSales: 10, ShareOnProfits: 0},
	}
}

func snapshotByCode(snapshots []CommissionSnapshot, code string) *CommissionSnapshot {
	for i := range snapshots {
		if snapshots[i].ResellerCode == code {
			return &snapshots[i]
		}
	}
	return nil
}

func TestComputeTier(t *testing.T) {
	commission, balance := ComputeTier(LedgerTotals{Sales: dec(1000), Prizes: dec(200)}, 10)
	assert.True(t, dec(100).Equal(commission))
	assert.True(t, dec(700).Equal(balance))
}

func TestComputeTierZeroSalesYieldsNegativeBalance(t *testing.T) {
	commission, balance := ComputeTier(LedgerTotals{Sales: decimal.Zero, Prizes: dec(50)}, 10)
	assert.True(t, commission.IsZero())
	assert.True(t, dec(-50).Equal(balance), "a net loss is reported, not clamped to zero")
}

func TestBalanceIdentityHoldsForEveryTier(t *testing.T) {
	totals := map[string]LedgerTotals{
		"3posA1": {Sales: dec(1000), Prizes: dec(200)},
		"3posA2": {Sales: dec(500), Prizes: dec(900)},
	}

	for _, s := range BuildHierarchyReport(testTree(), totals) {
		expected := s.Sales.Sub(s.Prizes).Sub(s.Commission)
		assert.True(t, expected.Equal(s.Balance), "balance identity broken for %s", s.ResellerCode)
	}
}

func TestHierarchyRollUp(t *testing.T) {
	totals := map[string]LedgerTotals{
		"3posA1": {Sales: dec(1000), Prizes: dec(200)},
		"3posA2": {Sales: dec(500), Prizes: decimal.Zero},
	}

	snapshots := BuildHierarchyReport(testTree(), totals)

	posA1 := snapshotByCode(snapshots, "3posA1")
	require.NotNil(t, posA1)
	assert.True(t, dec(100).Equal(posA1.Commission))
	assert.True(t, dec(700).Equal(posA1.Balance))
	assert.True(t, dec(700).Equal(posA1.NetBalance))

	posA2 := snapshotByCode(snapshots, "3posA2")
	require.NotNil(t, posA2)
	assert.True(t, dec(50).Equal(posA2.Commission))
	assert.True(t, dec(450).Equal(posA2.Balance))

	agency := snapshotByCode(snapshots, "2agencyA")
	require.NotNil(t, agency)
	assert.True(t, dec(1500).Equal(agency.Sales), "agency sums its children's sales")
	assert.True(t, dec(200).Equal(agency.Prizes))
	// 20% of (700 + 450)
	assert.True(t, dec(230).Equal(agency.ProfitShare))
	assert.True(t, dec(230).Equal(agency.NetBalance))

	dist := snapshotByCode(snapshots, "1dist")
	require.NotNil(t, dist)
	assert.True(t, dec(1500).Equal(dist.Sales))
	// 25% of the agency's 230
	assert.True(t, decimal.NewFromFloat(57.5).Equal(dist.NetBalance))
}

func TestAgencyWithTwoEqualChildren(t *testing.T) {
	totals := map[string]LedgerTotals{
		"3posA1": {Sales: dec(1000), Prizes: decimal.Zero},
		"3posA2": {Sales: dec(1000), Prizes: decimal.Zero},
	}

	snapshots := BuildHierarchyReport(testTree(), totals)
	childBalance := dec(900) // 1000 - 0 - 100

	agency := snapshotByCode(snapshots, "2agencyA")
	require.NotNil(t, agency)
	expected := childBalance.Add(childBalance).Mul(decimal.NewFromInt(20)).Div(decimal.NewFromInt(100))
	assert.True(t, expected.Equal(agency.NetBalance))
}

func TestResellerWithoutSalesStillReported(t *testing.T) {
	snapshots := BuildHierarchyReport(testTree(), map[string]LedgerTotals{})

	posA1 := snapshotByCode(snapshots, "3posA1")
	require.NotNil(t, posA1)
	assert.True(t, posA1.Sales.IsZero())
	assert.True(t, posA1.Balance.IsZero())
}

func TestOverCeilingFlagged(t *testing.T) {
	tree := testTree()
	// Legacy data: the child's share exceeds the parent ceiling. Figures
	// pass through unclamped but the row is flagged.
	tree[2].ShareOnSales = 40

	totals := map[string]LedgerTotals{"3posA1": {Sales: dec(1000)}}
	snapshots := BuildHierarchyReport(tree, totals)

	posA1 := snapshotByCode(snapshots, "3posA1")
	require.NotNil(t, posA1)
	assert.True(t, posA1.OverCeiling)
	assert.True(t, dec(400).Equal(posA1.Commission), "legacy share applied as stored")

	posA2 := snapshotByCode(snapshots, "3posA2")
	require.NotNil(t, posA2)
	assert.False(t, posA2.OverCeiling)
}

func TestValidateShares(t *testing.T) {
	parent := &models.Reseller{ShareOnSales: 15, ShareOnProfits: 20}

	assert.NoError(t, ValidateShares(10, 15, parent))
	assert.NoError(t, ValidateShares(15, 20, parent))
	assert.ErrorIs(t, ValidateShares(16, 10, parent), ErrShareCeiling)
	assert.ErrorIs(t, ValidateShares(10, 21, parent), ErrShareCeiling)
	assert.ErrorIs(t, ValidateShares(-1, 0, nil), ErrShareCeiling)
	assert.ErrorIs(t, ValidateShares(101, 0, nil), ErrShareCeiling)
	assert.NoError(t, ValidateShares(100, 100, nil), "top tier has no ceiling")
}
