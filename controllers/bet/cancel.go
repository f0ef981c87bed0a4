package bet

import (
	"banca/database"
	"banca/helpers"
	"banca/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CancelBetRequest struct {
	BetID uint `json:"bet_id"`
}

// CancelBet voids a bet that has not entered settlement yet. A cancelled bet
// is immutable afterwards and its items never count as sales.
func CancelBet(c *fiber.Ctx) error {
	reseller, ok := c.Locals("reseller").(models.Reseller)
	if !ok {
		return helpers.JSONError(c, "INVALID_RESELLER_CREDENTIALS")
	}

	var req CancelBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var resp error
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var b models.Bet
		if err := tx.Where("id = ? AND reseller_code = ?", req.BetID, reseller.Code).First(&b).Error; err != nil {
			resp = helpers.JSONNotFound(c, "BET_NOT_FOUND")
			return nil
		}
		if b.Status != models.BetActive {
			resp = helpers.JSONError(c, "BET_ALREADY_CANCELLED")
			return nil
		}

		var settled int64
		if err := tx.Model(&models.BetItem{}).
			Where("bet_id = ? AND status <> ?", b.ID, models.ItemActive).
			Count(&settled).Error; err != nil {
			return err
		}
		if settled > 0 {
			resp = helpers.JSONError(c, "BET_ALREADY_SETTLED")
			return nil
		}

		if err := tx.Model(&models.BetItem{}).
			Where("bet_id = ? AND status = ?", b.ID, models.ItemActive).
			Update("status", models.ItemCancelled).Error; err != nil {
			return err
		}
		if err := tx.Model(&b).Update("status", models.BetCancelled).Error; err != nil {
			return err
		}

		resp = helpers.JSONSuccess(c, "Bet cancelled successfully", fiber.Map{
			"bet_id": b.ID,
		})
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_CANCEL_BET")
	}
	return resp
}
