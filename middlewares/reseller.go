package middlewares

import (
	"banca/database"
	"banca/helpers"
	"banca/models"

	"github.com/gofiber/fiber/v2"
)

func ResellerAuthMiddleware(c *fiber.Ctx) error {
	code := c.Get("X-Reseller-Code")
	secretKey := c.Get("X-Secret-Key")

	if code == "" || secretKey == "" {
		return helpers.JSONError(c, "RESELLER_CODE_AND_SECRET_REQUIRED")
	}

	var reseller models.Reseller
	if err := database.DB.Where("code = ? AND secret_key = ? AND is_active = true", code, secretKey).First(&reseller).Error; err != nil {
		return helpers.JSONError(c, "INVALID_RESELLER_CREDENTIALS")
	}

	c.Locals("reseller", reseller)
	return c.Next()
}
