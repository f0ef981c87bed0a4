package reseller

import (
	"banca/database"
	"banca/helpers"
	"banca/models"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type UpdateSharesRequest struct {
	Code           string  `json:"code"`
	ShareOnSales   float64 `json:"share_on_sales"`
	ShareOnProfits float64 `json:"share_on_profits"`
}

// UpdateResellerShares edits a reseller's percentages. The new values must
// stay under the parent's ceiling and must not drop under what any child
// already has configured.
func UpdateResellerShares(c *fiber.Ctx) error {
	var req UpdateSharesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var reseller models.Reseller
	if err := database.DB.Where("code = ?", req.Code).First(&reseller).Error; err != nil {
		return helpers.JSONNotFound(c, "RESELLER_NOT_FOUND")
	}

	var parent *models.Reseller
	if reseller.ParentCode != nil {
		var p models.Reseller
		if err := database.DB.Where("code = ?", *reseller.ParentCode).First(&p).Error; err == nil {
			parent = &p
		}
	}

	if err := services.ValidateShares(req.ShareOnSales, req.ShareOnProfits, parent); err != nil {
		return helpers.JSONError(c, "SHARE_EXCEEDS_PARENT_CEILING")
	}

	var children []models.Reseller
	if err := database.DB.Where("parent_code = ?", reseller.Code).Find(&children).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_CHILDREN")
	}
	for _, child := range children {
		if child.ShareOnSales > req.ShareOnSales || child.ShareOnProfits > req.ShareOnProfits {
			return helpers.JSONError(c, "SHARE_BELOW_CHILD_CONFIGURATION")
		}
	}

	updates := map[string]interface{}{
		"share_on_sales":   req.ShareOnSales,
		"share_on_profits": req.ShareOnProfits,
	}
	if err := database.DB.Model(&reseller).Updates(updates).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_RESELLER")
	}

	return helpers.JSONSuccess(c, "Reseller shares updated successfully", fiber.Map{
		"code":             reseller.Code,
		"share_on_sales":   req.ShareOnSales,
		"share_on_profits": req.ShareOnProfits,
	})
}
