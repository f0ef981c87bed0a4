package reseller

import (
	"time"

	"banca/database"
	"banca/helpers"
	"banca/models"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

// ResellerInfo returns the caller's profile plus its commission snapshot for
// the current month.
func ResellerInfo(c *fiber.Ctx) error {
	code := c.Get("X-Reseller-Code")
	secretKey := c.Get("X-Secret-Key")

	var reseller models.Reseller
	if err := database.DB.Where("code = ? AND secret_key = ? AND is_active = true", code, secretKey).
		First(&reseller).Error; err != nil {
		return helpers.JSONError(c, "INVALID_RESELLER_CREDENTIALS")
	}

	window, err := services.ResolveWindow(services.PeriodMonth, nil, nil, time.Now())
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_RESOLVE_WINDOW")
	}

	all, err := services.LoadResellers(database.DB)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_RESELLERS")
	}
	subtree := services.Subtree(all, reseller.Code)

	totals, err := services.AggregateLedger(database.DB, services.PointOfSaleCodes(subtree), window, "")
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_AGGREGATE_LEDGER")
	}

	var own *services.CommissionSnapshot
	for _, s := range services.BuildHierarchyReport(subtree, totals) {
		if s.ResellerCode == reseller.Code {
			snapshot := s
			own = &snapshot
			break
		}
	}
	if own == nil {
		return helpers.JSONError(c, "FAILED_TO_BUILD_SNAPSHOT")
	}

	return helpers.JSONSuccess(c, "Reseller info retrieved successfully", fiber.Map{
		"code":             reseller.Code,
		"name":             reseller.Name,
		"rank":             reseller.Rank,
		"share_on_sales":   reseller.ShareOnSales,
		"share_on_profits": reseller.ShareOnProfits,
		"window_start":     window.Start,
		"window_end":       window.End,
		"sales":            helpers.DisplayAmount(own.Sales),
		"prizes":           helpers.DisplayAmount(own.Prizes),
		"commission":       helpers.DisplayAmount(own.Commission),
		"balance":          helpers.DisplayAmount(own.Balance),
		"net_balance":      helpers.DisplayAmount(own.NetBalance),
		"over_ceiling":     own.OverCeiling,
	})
}
