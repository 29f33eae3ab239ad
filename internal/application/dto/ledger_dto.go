package dto

import (
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/balance"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// MovementRequest body de POST /api/movements e PUT /api/movements/:id.
// Date vazio usa a data de hoje no fuso da instituição.
type MovementRequest struct {
	Date       string `json:"date"`
	Kind       string `json:"kind"`
	ProductID  string `json:"product_id"`
	ResidentID string `json:"resident_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// MutationResponse resultado de edição/exclusão; Applied=false quando o ID não existia.
type MutationResponse struct {
	Applied  bool             `json:"applied"`
	Movement *entity.Movement `json:"movement,omitempty"`
}

// MovementFilter filtros de GET /api/movements (datas inclusivas).
type MovementFilter struct {
	ResidentID string `query:"resident_id"`
	ProductID  string `query:"product_id"`
	Kind       string `query:"kind"` // IN ou OUT
	From       string `query:"from"`
	To         string `query:"to"`
}

// MovementListResponse página de movimentações, mais recentes primeiro.
type MovementListResponse struct {
	Page      PageResponse      `json:"page"`
	Movements []entity.Movement `json:"movements"`
}

// BalanceResponse saldo pessoal de um par residente/produto.
type BalanceResponse struct {
	ResidentID string `json:"resident_id"`
	ProductID  string `json:"product_id"`
	Balance    int    `json:"balance"`
	LowStock   bool   `json:"low_stock"`
}

// ResidentBalancesResponse saldos de todos os produtos de um residente.
type ResidentBalancesResponse struct {
	ResidentID string                   `json:"resident_id"`
	Balances   []balance.ProductBalance `json:"balances"`
}

// ConsumptionSeriesResponse série diária de consumo (saídas).
type ConsumptionSeriesResponse struct {
	ResidentID string                     `json:"resident_id"`
	Days       int                        `json:"days"`
	Total      int                        `json:"total"`
	Series     []balance.DailyConsumption `json:"series"`
}

// ProductStockResponse contador geral e verificação por replay.
type ProductStockResponse struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	Replayed     int    `json:"replayed"`
	Drift        int    `json:"drift"` // Replayed - CurrentStock
	BelowMinimum bool   `json:"below_minimum"`
}

// DosageSuggestionRequest body de POST /api/dosage/suggestion.
type DosageSuggestionRequest struct {
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// OverrideDTO quantidade manual para um par residente/produto.
type OverrideDTO struct {
	ResidentID string `json:"resident_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

// ReplenishmentPlanRequest body de POST /api/replenishment/plan.
type ReplenishmentPlanRequest struct {
	Overrides []OverrideDTO `json:"overrides"`
}
