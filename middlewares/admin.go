package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth verifies the dashboard's HMAC signature header against the
// configured admin credentials.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Admin-Signature")
		if signature == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "MISSING_SIGNATURE",
			})
		}

		adminCode := os.Getenv("ADMIN_CODE")
		adminSecret := os.Getenv("ADMIN_SECRET")

		h := hmac.New(sha256.New, []byte(adminSecret))
		h.Write([]byte(adminCode + adminSecret))
		expectedSignature := hex.EncodeToString(h.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expectedSignature)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
