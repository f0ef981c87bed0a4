package settlement

import (
	"errors"
	"time"

	"banca/database"
	"banca/helpers"
	"banca/models"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type SettleDrawRequest struct {
	LotteryCode   string `json:"lottery_code"`
	DrawDate      string `json:"draw_date"`
	WinningNumber string `json:"winning_number"`
	WinningKey    string `json:"winning_key"`
}

// SettleDrawHandler records the draw result and runs settlement over every
// still-active bet item of that draw. Calling it again for the same draw is a
// harmless no-op; racing calls are resolved by the guarded update underneath.
func SettleDrawHandler(c *fiber.Ctx) error {
	var req SettleDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.LotteryCode == "" || (req.WinningNumber == "" && req.WinningKey == "") {
		return helpers.JSONError(c, "LOTTERY_CODE_AND_WINNING_RESULT_REQUIRED")
	}

	drawDate, err := time.Parse("2006-01-02", req.DrawDate)
	if err != nil {
		return helpers.JSONError(c, "INVALID_DRAW_DATE")
	}

	draw := models.DrawResult{
		LotteryCode:   req.LotteryCode,
		DrawDate:      drawDate,
		WinningNumber: req.WinningNumber,
		WinningKey:    req.WinningKey,
	}
	if err := database.DB.
		Where("lottery_code = ? AND draw_date = ?", req.LotteryCode, drawDate).
		FirstOrCreate(&draw).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_RECORD_DRAW")
	}

	result, err := services.SettleDraw(database.DB, &draw)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownLottery):
			return helpers.JSONNotFound(c, "LOTTERY_NOT_FOUND")
		case errors.Is(err, services.ErrUnknownFamily):
			return helpers.JSONError(c, "UNKNOWN_LOTTERY_FAMILY")
		default:
			return helpers.JSONError(c, "FAILED_TO_SETTLE_DRAW")
		}
	}

	return helpers.JSONSuccess(c, "Draw settled successfully", fiber.Map{
		"lottery_code": result.LotteryCode,
		"draw_date":    result.DrawDate.Format("2006-01-02"),
		"evaluated":    result.Evaluated,
		"winners":      result.Winners,
		"losers":       result.Losers,
		"gaps":         result.Gaps,
		"rows_marked":  result.RowsMarked,
		"total_raised": helpers.DisplayAmount(result.TotalRaised),
		"total_paid":   helpers.DisplayAmount(result.TotalPaid),
	})
}
