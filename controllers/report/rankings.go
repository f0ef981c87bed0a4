package report

import (
	"errors"

	"banca/database"
	"banca/helpers"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type RankingsRequest struct {
	Period        string   `json:"period"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Family        string   `json:"family"`
	Top           int      `json:"top"`
	ResellerCodes []string `json:"reseller_codes"`
}

// RankingsHandler serves the activity views of the dashboard: top wagered
// numbers, top resellers by sales, and the hourly load curve for today.
func RankingsHandler(c *fiber.Ctx) error {
	var req RankingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Top <= 0 {
		req.Top = 10
	}

	window, err := parseWindow(req.Period, req.From, req.To)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			return helpers.JSONError(c, "INVALID_RANGE")
		}
		return helpers.JSONError(c, "INVALID_PERIOD")
	}

	numbers, err := services.TopNumbers(database.DB, req.ResellerCodes, window, req.Family, req.Top)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_RANK_NUMBERS")
	}
	resellers, err := services.TopResellers(database.DB, req.ResellerCodes, window, req.Family, req.Top)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_RANK_RESELLERS")
	}

	data := fiber.Map{
		"window_start":  window.Start,
		"window_end":    window.End,
		"top_numbers":   numbers,
		"top_resellers": resellers,
	}

	if req.Period == services.PeriodToday {
		hourly, err := services.HourlySales(database.DB, req.ResellerCodes, window, req.Family)
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_BUCKET_HOURLY_SALES")
		}
		data["hourly"] = hourly
	}

	return helpers.JSONSuccess(c, "Rankings generated successfully", data)
}
