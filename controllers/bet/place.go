package bet

import (
	"time"

	"banca/database"
	"banca/helpers"
	"banca/lotteries"
	"banca/lotteries/rules"
	"banca/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlaceBetRequest struct {
	LotteryCode string         `json:"lottery_code"`
	DrawDate    string         `json:"draw_date"`
	Items       []PlaceBetItem `json:"items"`
}

type PlaceBetItem struct {
	Selection string  `json:"selection"`
	Amount    float64 `json:"amount"`
}

// PlaceBet creates a bet with its items for the authenticated point of sale.
// Combination items get their prize fixed here, from the lottery's prize
// table, so settlement only reads it back.
func PlaceBet(c *fiber.Ctx) error {
	reseller, ok := c.Locals("reseller").(models.Reseller)
	if !ok {
		return helpers.JSONError(c, "INVALID_RESELLER_CREDENTIALS")
	}
	if reseller.Rank != models.RankPointOfSale {
		return helpers.JSONError(c, "ONLY_POINT_OF_SALE_CAN_PLACE_BETS")
	}

	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if len(req.Items) == 0 {
		return helpers.JSONError(c, "BET_ITEMS_REQUIRED")
	}

	drawDate, err := time.Parse("2006-01-02", req.DrawDate)
	if err != nil {
		return helpers.JSONError(c, "INVALID_DRAW_DATE")
	}

	var lottery models.Lottery
	if err := database.DB.Preload("PrizeTable").Where("code = ?", req.LotteryCode).First(&lottery).Error; err != nil {
		return helpers.JSONNotFound(c, "LOTTERY_NOT_FOUND")
	}
	table := lotteries.TableFor(lottery.PrizeTable)

	total := decimal.Zero
	items := make([]models.BetItem, 0, len(req.Items))
	for _, it := range req.Items {
		amount := decimal.NewFromFloat(it.Amount)
		if !amount.IsPositive() {
			return helpers.JSONError(c, "INVALID_ITEM_AMOUNT")
		}

		item := models.BetItem{
			ResellerCode: reseller.Code,
			LotteryCode:  lottery.Code,
			Family:       lottery.Family,
			DrawDate:     drawDate,
			Selection:    it.Selection,
			Amount:       amount,
			Status:       models.ItemActive,
		}

		if lottery.Family == string(lotteries.FamilyCombination) {
			key := rules.DeriveKey(it.Selection)
			row, ok := table[key]
			if !ok {
				return helpers.JSONError(c, "COMBINATION_NOT_CONFIGURED")
			}
			item.Selection = key
			item.Prize = amount.Mul(row.Multiplier)
		}

		total = total.Add(amount)
		items = append(items, item)
	}

	newBet := models.Bet{
		ResellerCode: reseller.Code,
		Amount:       total,
		Status:       models.BetActive,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newBet).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].BetID = newBet.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"bet_id": newBet.ID,
		"amount": helpers.DisplayAmount(total),
		"items":  len(items),
	})
}
