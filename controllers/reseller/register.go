package reseller

import (
	"banca/database"
	"banca/helpers"
	"banca/models"
	"banca/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegisterResellerRequest struct {
	Name           string  `json:"name"`
	Rank           string  `json:"rank"`
	ParentCode     string  `json:"parent_code"`
	ShareOnSales   float64 `json:"share_on_sales"`
	ShareOnProfits float64 `json:"share_on_profits"`
}

func expectedParentRank(rank string) string {
	if rank == models.RankPointOfSale {
		return models.RankAgency
	}
	return models.RankDistributor
}

func RegisterReseller(c *fiber.Ctx) error {
	var req RegisterResellerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	switch req.Rank {
	case models.RankPointOfSale, models.RankAgency, models.RankDistributor:
	default:
		return helpers.JSONError(c, "INVALID_RANK")
	}

	var parent *models.Reseller
	if req.Rank != models.RankDistributor {
		if req.ParentCode == "" {
			return helpers.JSONError(c, "PARENT_CODE_REQUIRED")
		}
		var p models.Reseller
		if err := database.DB.Where("code = ? AND is_active = true", req.ParentCode).First(&p).Error; err != nil {
			return helpers.JSONError(c, "PARENT_NOT_FOUND")
		}
		if p.Rank != expectedParentRank(req.Rank) {
			return helpers.JSONError(c, "INVALID_PARENT_RANK")
		}
		parent = &p
	}

	if err := services.ValidateShares(req.ShareOnSales, req.ShareOnProfits, parent); err != nil {
		return helpers.JSONError(c, "SHARE_EXCEEDS_PARENT_CEILING")
	}

	code := helpers.GenerateResellerCode(req.Rank)
	secretKey := uuid.New().String()

	var existing models.Reseller
	if err := database.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "RESELLER_CODE_ALREADY_EXISTS")
	}

	reseller := models.Reseller{
		Code:           code,
		Name:           req.Name,
		Rank:           req.Rank,
		ShareOnSales:   req.ShareOnSales,
		ShareOnProfits: req.ShareOnProfits,
		SecretKey:      secretKey,
		IsActive:       true,
	}
	if parent != nil {
		reseller.ParentCode = &parent.Code
	}

	if err := database.DB.Create(&reseller).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_RESELLER")
	}

	return helpers.JSONSuccess(c, "Reseller registered successfully", fiber.Map{
		"code":             reseller.Code,
		"name":             reseller.Name,
		"rank":             reseller.Rank,
		"parent_code":      req.ParentCode,
		"share_on_sales":   reseller.ShareOnSales,
		"share_on_profits": reseller.ShareOnProfits,
		"secret_key":       reseller.SecretKey,
	})
}
