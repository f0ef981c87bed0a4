package settlement

import (
	"banca/database"
	"banca/helpers"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type PayWinnersRequest struct {
	ItemIDs []uint `json:"item_ids"`
}

// PayWinnersHandler moves settled winners to paid. The update is guarded on
// the winner status, so an item can never be paid out twice.
func PayWinnersHandler(c *fiber.Ctx) error {
	var req PayWinnersRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if len(req.ItemIDs) == 0 {
		return helpers.JSONError(c, "ITEM_IDS_REQUIRED")
	}

	affected, err := services.MarkItemsPaid(database.DB, req.ItemIDs)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_MARK_PAID")
	}

	return helpers.JSONSuccess(c, "Winners marked as paid", fiber.Map{
		"requested": len(req.ItemIDs),
		"paid":      affected,
	})
}
