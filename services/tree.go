package services

import (
	"fmt"

	"gorm.io/gorm"

	"banca/models"
)

// LoadResellers fetches the full reseller tree for reporting. Inactive
// resellers are included: their settled history still has to balance.
func LoadResellers(db *gorm.DB) ([]models.Reseller, error) {
	var resellers []models.Reseller
	err := withRetry(func() error {
		resellers = nil
		return db.Find(&resellers).Error
	})
	if err != nil {
		return nil, fmt.Errorf("load resellers: %w", err)
	}
	return resellers, nil
}

// Subtree filters the tree down to a root and everything under it.
func Subtree(resellers []models.Reseller, rootCode string) []models.Reseller {
	children := map[string][]models.Reseller{}
	byCode := map[string]models.Reseller{}
	for _, r := range resellers {
		byCode[r.Code] = r
		if r.ParentCode != nil {
			children[*r.ParentCode] = append(children[*r.ParentCode], r)
		}
	}

	root, ok := byCode[rootCode]
	if !ok {
		return nil
	}

	out := []models.Reseller{root}
	queue := []string{rootCode}
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		for _, child := range children[code] {
			out = append(out, child)
			queue = append(queue, child.Code)
		}
	}
	return out
}

// PointOfSaleCodes extracts the leaf tier, the only tier that owns bets.
func PointOfSaleCodes(resellers []models.Reseller) []string {
	codes := make([]string, 0, len(resellers))
	for _, r := range resellers {
		if r.Rank == models.RankPointOfSale {
			codes = append(codes, r.Code)
		}
	}
	return codes
}
