package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"banca/models"
)

var ErrShareCeiling = errors.New("share exceeds parent ceiling")

// CommissionSnapshot is the derived money view of one reseller for a window.
// Balance always satisfies balance = sales - prizes - commission. NetBalance
// is what the tier actually keeps: a point of sale keeps its balance, an
// agency or distributor keeps its profit share of the tier below.
type CommissionSnapshot struct {
	ResellerCode string          `json:"reseller_code"`
	Rank         string          `json:"rank"`
	Sales        decimal.Decimal `json:"sales"`
	Prizes       decimal.Decimal `json:"prizes"`
	Commission   decimal.Decimal `json:"commission"`
	Balance      decimal.Decimal `json:"balance"`
	ProfitShare  decimal.Decimal `json:"profit_share"`
	NetBalance   decimal.Decimal `json:"net_balance"`

	// OverCeiling flags stored shares that exceed the parent's ceiling.
	// Legacy rows may violate the invariant; figures are passed through
	// unclamped and the violation is surfaced instead.
	OverCeiling bool `json:"over_ceiling"`
}

var oneHundred = decimal.NewFromInt(100)

func shareOf(amount decimal.Decimal, percent float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(percent)).Div(oneHundred)
}

// ComputeTier nets one reseller's own figures: commission on raw sales and
// the residual balance, which may be negative and is reported as such.
func ComputeTier(totals LedgerTotals, shareOnSales float64) (commission, balance decimal.Decimal) {
	commission = shareOf(totals.Sales, shareOnSales)
	balance = totals.Sales.Sub(totals.Prizes).Sub(commission)
	return commission, balance
}

// ValidateShares enforces the percentage ceiling a parent defines for its
// children. A nil parent (top tier) accepts any configured share.
func ValidateShares(shareOnSales, shareOnProfits float64, parent *models.Reseller) error {
	if shareOnSales < 0 || shareOnSales > 100 || shareOnProfits < 0 || shareOnProfits > 100 {
		return ErrShareCeiling
	}
	if parent == nil {
		return nil
	}
	if shareOnSales > parent.ShareOnSales || shareOnProfits > parent.ShareOnProfits {
		return ErrShareCeiling
	}
	return nil
}

// BuildHierarchyReport rolls aggregated point-of-sale figures up the reseller
// tree, one tier at a time: point of sale, then agency, then distributor.
func BuildHierarchyReport(resellers []models.Reseller, totals map[string]LedgerTotals) []CommissionSnapshot {
	byCode := make(map[string]*models.Reseller, len(resellers))
	children := map[string][]*models.Reseller{}
	for i := range resellers {
		r := &resellers[i]
		byCode[r.Code] = r
		if r.ParentCode != nil {
			children[*r.ParentCode] = append(children[*r.ParentCode], r)
		}
	}

	snapshots := map[string]*CommissionSnapshot{}

	computeLeaf := func(r *models.Reseller) {
		t := totals[r.Code]
		commission, balance := ComputeTier(t, r.ShareOnSales)
		snapshots[r.Code] = &CommissionSnapshot{
			ResellerCode: r.Code,
			Rank:         r.Rank,
			Sales:        t.Sales,
			Prizes:       t.Prizes,
			Commission:   commission,
			Balance:      balance,
			NetBalance:   balance,
			OverCeiling:  overCeiling(r, byCode),
		}
	}

	computeUpper := func(r *models.Reseller) {
		sales, prizes, childNet := decimal.Zero, decimal.Zero, decimal.Zero
		for _, child := range children[r.Code] {
			if cs, ok := snapshots[child.Code]; ok {
				sales = sales.Add(cs.Sales)
				prizes = prizes.Add(cs.Prizes)
				childNet = childNet.Add(cs.NetBalance)
			}
		}
		commission := shareOf(sales, r.ShareOnSales)
		profitShare := shareOf(childNet, r.ShareOnProfits)
		snapshots[r.Code] = &CommissionSnapshot{
			ResellerCode: r.Code,
			Rank:         r.Rank,
			Sales:        sales,
			Prizes:       prizes,
			Commission:   commission,
			Balance:      sales.Sub(prizes).Sub(commission),
			ProfitShare:  profitShare,
			NetBalance:   profitShare,
			OverCeiling:  overCeiling(r, byCode),
		}
	}

	for _, rank := range []string{models.RankPointOfSale, models.RankAgency, models.RankDistributor} {
		for i := range resellers {
			r := &resellers[i]
			if r.Rank != rank {
				continue
			}
			if rank == models.RankPointOfSale {
				computeLeaf(r)
			} else {
				computeUpper(r)
			}
		}
	}

	out := make([]CommissionSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return rankOrder(out[i].Rank) < rankOrder(out[j].Rank)
		}
		return out[i].ResellerCode < out[j].ResellerCode
	})
	return out
}

func overCeiling(r *models.Reseller, byCode map[string]*models.Reseller) bool {
	if r.ParentCode == nil {
		return false
	}
	parent, ok := byCode[*r.ParentCode]
	if !ok {
		return false
	}
	return r.ShareOnSales > parent.ShareOnSales || r.ShareOnProfits > parent.ShareOnProfits
}

func rankOrder(rank string) int {
	switch rank {
	case models.RankPointOfSale:
		return 0
	case models.RankAgency:
		return 1
	default:
		return 2
	}
}
