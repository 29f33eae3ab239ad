package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/jwt"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Service   *inventory.Service
	JWTSecret string
}

// Router registra as rotas /api. Leitura: qualquer papel autenticado.
// Escrita no ledger: admin e enfermagem. Administração de dose: também cuidador.
func Router(app fiber.Router, deps RouterDeps) {
	ledgerHandler := NewLedgerHandler(deps.Service)
	planHandler := NewReplenishmentHandler(deps.Service)
	adminHandler := NewAdministrationHandler(deps.Service)

	writers := RequireRole(jwt.RoleAdmin, jwt.RoleNurse)
	caregivers := RequireRole(jwt.RoleAdmin, jwt.RoleNurse, jwt.RoleCaregiver)
	admins := RequireRole(jwt.RoleAdmin)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	movements := api.Group("/movements")
	movements.Get("/", ledgerHandler.ListMovements)
	movements.Post("/", writers, ledgerHandler.RecordMovement)
	movements.Put("/:id", writers, ledgerHandler.EditMovement)
	movements.Delete("/:id", writers, ledgerHandler.DeleteMovement)

	residents := api.Group("/residents/:residentId")
	residents.Get("/balances", ledgerHandler.ResidentBalances)
	residents.Get("/consumption", ledgerHandler.ConsumptionSeries)
	residents.Get("/products/:productId/balance", ledgerHandler.PersonalBalance)

	api.Get("/products/:id/stock", ledgerHandler.ProductStock)

	api.Post("/dosage/suggestion", planHandler.DosageSuggestion)
	api.Post("/replenishment/plan", planHandler.BuildPlan)
	api.Post("/replenishment/plan.pdf", planHandler.PlanPDF)

	api.Post("/prescriptions/:id/administer", caregivers, adminHandler.Administer)
	api.Get("/prescriptions/:id/administered-today", adminHandler.AdministeredToday)

	api.Get("/ledger/verify", ledgerHandler.VerifyLedger)
	api.Post("/ledger/reconcile", admins, ledgerHandler.ReconcileLedger)
}
