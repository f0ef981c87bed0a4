package report

import (
	"encoding/json"
	"time"

	"banca/database"
	"banca/helpers"
	"banca/services"

	"github.com/gofiber/fiber/v2"
)

type BuildSnapshotRequest struct {
	Period string `json:"period"`
}

func BuildSnapshotHandler(c *fiber.Ctx) error {
	var req BuildSnapshotRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	snapshot, err := services.BuildSnapshot(database.DB, req.Period, time.Now())
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_BUILD_SNAPSHOT")
	}

	return helpers.JSONSuccess(c, "Snapshot built successfully", fiber.Map{
		"id":           snapshot.ID,
		"period":       snapshot.Period,
		"window_start": snapshot.WindowStart,
		"window_end":   snapshot.WindowEnd,
	})
}

func GetSnapshotHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_SNAPSHOT_ID")
	}

	snapshot, err := services.LoadSnapshot(database.DB, uint(id))
	if err != nil {
		return helpers.JSONNotFound(c, "SNAPSHOT_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Snapshot retrieved successfully", fiber.Map{
		"id":           snapshot.ID,
		"period":       snapshot.Period,
		"window_start": snapshot.WindowStart,
		"window_end":   snapshot.WindowEnd,
		"payload":      json.RawMessage(snapshot.Payload),
	})
}
