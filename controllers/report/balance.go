package report

import (
	"errors"
	"time"

	"banca/database"
	"banca/helpers"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type BalanceReportRequest struct {
	Period string `json:"period"`
	From   string `json:"from"`
	To     string `json:"to"`
	Family string `json:"family"`

	// ResellerCodes is the caller's allow-list of visible point-of-sale
	// codes. Omitted means no filter; an explicit empty list means the
	// caller sees no resellers and gets all-zero figures.
	ResellerCodes []string `json:"reseller_codes"`
}

func parseWindow(period, from, to string) (services.Window, error) {
	var fromT, toT *time.Time
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return services.Window{}, err
		}
		fromT = &t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return services.Window{}, err
		}
		toT = &t
	}
	return services.ResolveWindow(period, fromT, toT, time.Now())
}

// BalanceReportHandler computes the per-tier commission report for a window:
// point-of-sale figures from the ledger, agency and distributor figures
// rolled up bottom-up.
func BalanceReportHandler(c *fiber.Ctx) error {
	var req BalanceReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	window, err := parseWindow(req.Period, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRange):
			return helpers.JSONError(c, "INVALID_RANGE")
		case errors.Is(err, services.ErrMissingRange):
			return helpers.JSONError(c, "RANGE_REQUIRES_FROM_AND_TO")
		case errors.Is(err, services.ErrUnknownPeriod):
			return helpers.JSONError(c, "UNKNOWN_PERIOD")
		default:
			return helpers.JSONError(c, "INVALID_DATE")
		}
	}

	resellers, err := services.LoadResellers(database.DB)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_RESELLERS")
	}

	totals, err := services.AggregateLedger(database.DB, req.ResellerCodes, window, req.Family)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_AGGREGATE_LEDGER")
	}

	rows := make([]fiber.Map, 0, len(resellers))
	for _, s := range services.BuildHierarchyReport(resellers, totals) {
		rows = append(rows, fiber.Map{
			"reseller_code": s.ResellerCode,
			"rank":          s.Rank,
			"sales":         helpers.DisplayAmount(s.Sales),
			"prizes":        helpers.DisplayAmount(s.Prizes),
			"commission":    helpers.DisplayAmount(s.Commission),
			"balance":       helpers.DisplayAmount(s.Balance),
			"profit_share":  helpers.DisplayAmount(s.ProfitShare),
			"net_balance":   helpers.DisplayAmount(s.NetBalance),
			"over_ceiling":  s.OverCeiling,
		})
	}

	return helpers.JSONSuccess(c, "Balance report generated successfully", fiber.Map{
		"window_start": window.Start,
		"window_end":   window.End,
		"rows":         rows,
	})
}
