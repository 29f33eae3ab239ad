// Package balance deriva saldos e séries de consumo a partir das movimentações.
// Nada aqui é persistido: tudo é recalculado a cada leitura.
package balance

import (
	"sort"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// MovementSource qualquer coisa que exponha a coleção de movimentações (ex.: ledger.Store).
type MovementSource interface {
	Movements() []entity.Movement
}

// DailyConsumption total de saídas de um residente numa data.
type DailyConsumption struct {
	Date     entity.Date `json:"date"`
	Quantity int         `json:"quantity"`
}

// ProductBalance saldo pessoal de um residente num produto.
type ProductBalance struct {
	ProductID string `json:"product_id"`
	Balance   int    `json:"balance"`
}

// Calculator leitor sem efeitos colaterais sobre uma MovementSource.
type Calculator struct {
	src MovementSource
}

// NewCalculator constrói o calculador.
func NewCalculator(src MovementSource) *Calculator {
	return &Calculator{src: src}
}

// PersonalBalance ver função PersonalBalance.
func (c *Calculator) PersonalBalance(residentID, productID string) int {
	return PersonalBalance(c.src.Movements(), residentID, productID)
}

// FacilityTotal ver função FacilityTotal.
func (c *Calculator) FacilityTotal(productID string) int {
	return FacilityTotal(c.src.Movements(), productID)
}

// DailyConsumptionSeries ver função DailyConsumptionSeries.
func (c *Calculator) DailyConsumptionSeries(residentID string, windowDays int, today entity.Date) []DailyConsumption {
	return DailyConsumptionSeries(c.src.Movements(), residentID, windowDays, today)
}

// ResidentBalances ver função ResidentBalances.
func (c *Calculator) ResidentBalances(residentID string) []ProductBalance {
	return ResidentBalances(c.src.Movements(), residentID)
}

// PersonalBalance soma IN - OUT das movimentações do par (residente, produto).
// O resultado independe da ordem das movimentações e pode ser negativo.
func PersonalBalance(movements []entity.Movement, residentID, productID string) int {
	total := 0
	for _, m := range movements {
		if m.ResidentID == residentID && m.ProductID == productID {
			total += m.SignedQuantity()
		}
	}
	return total
}

// FacilityTotal soma assinada de todas as movimentações do produto (replay).
func FacilityTotal(movements []entity.Movement, productID string) int {
	total := 0
	for _, m := range movements {
		if m.ProductID == productID {
			total += m.SignedQuantity()
		}
	}
	return total
}

// DailyConsumptionSeries para cada um dos últimos windowDays dias (hoje incluso,
// mais antigo primeiro) soma as saídas do residente em todos os produtos.
func DailyConsumptionSeries(movements []entity.Movement, residentID string, windowDays int, today entity.Date) []DailyConsumption {
	if windowDays <= 0 {
		return []DailyConsumption{}
	}
	series := make([]DailyConsumption, windowDays)
	pos := make(map[entity.Date]int, windowDays)
	for i := 0; i < windowDays; i++ {
		d := today.AddDays(i - (windowDays - 1))
		series[i] = DailyConsumption{Date: d}
		pos[d] = i
	}
	for _, m := range movements {
		if m.Kind != entity.MovementOUT || m.ResidentID != residentID {
			continue
		}
		if i, ok := pos[m.Date]; ok {
			series[i].Quantity += m.Quantity
		}
	}
	return series
}

// ResidentBalances saldo de cada produto movimentado pelo residente, ordenado por produto.
func ResidentBalances(movements []entity.Movement, residentID string) []ProductBalance {
	totals := map[string]int{}
	for _, m := range movements {
		if m.ResidentID == residentID {
			totals[m.ProductID] += m.SignedQuantity()
		}
	}
	out := make([]ProductBalance, 0, len(totals))
	for id, b := range totals {
		out = append(out, ProductBalance{ProductID: id, Balance: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
