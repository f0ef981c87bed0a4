package routes

import (
	"banca/controllers/bet"
	"banca/controllers/report"
	"banca/controllers/reseller"
	"banca/controllers/settlement"
	"banca/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/reseller/info", reseller.ResellerInfo)

	betroutes := app.Group("/bet", middlewares.ResellerAuthMiddleware)
	betroutes.Post("/place", bet.PlaceBet)
	betroutes.Post("/cancel", bet.CancelBet)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Post("/reseller/register", reseller.RegisterReseller)
	adminroutes.Post("/reseller/update", reseller.UpdateResellerShares)

	adminroutes.Post("/settlement/settle", settlement.SettleDrawHandler)
	adminroutes.Post("/settlement/pay", settlement.PayWinnersHandler)

	adminroutes.Post("/report/balance", report.BalanceReportHandler)
	adminroutes.Post("/report/rankings", report.RankingsHandler)
	adminroutes.Post("/report/snapshot", report.BuildSnapshotHandler)
	adminroutes.Get("/report/snapshot/:id", report.GetSnapshotHandler)
}
