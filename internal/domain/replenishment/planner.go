// Package replenishment agrega as prescrições ativas com saldo pessoal baixo
// em duas listas de pedido: por produto e por residente.
package replenishment

import (
	"sort"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/dosage"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// LowStockThreshold saldo pessoal a partir do qual (<=) o par entra no plano.
const LowStockThreshold = 5

// BalanceReader fornece o saldo pessoal (ex.: balance.Calculator).
type BalanceReader interface {
	PersonalBalance(residentID, productID string) int
}

// Key identifica um par (residente, produto).
type Key struct {
	ResidentID string
	ProductID  string
}

// Overrides quantidade manual por par; substitui a sugestão do parser.
type Overrides map[Key]int

// Input dados para montar o plano.
type Input struct {
	Prescriptions []entity.Prescription
	Products      []entity.Product
	Residents     []entity.Resident
	Balances      BalanceReader
	Overrides     Overrides
}

// ResidentNeed um residente dentro da visão por produto.
type ResidentNeed struct {
	ResidentID        string `json:"resident_id"`
	ResidentName      string `json:"resident_name"`
	SuggestedQuantity int    `json:"suggested_quantity"`
	Balance           int    `json:"balance"`
	Overridden        bool   `json:"overridden"`
}

// ProductLine item da visão por produto.
type ProductLine struct {
	ProductID     string         `json:"product_id"`
	ProductName   string         `json:"product_name"`
	Unit          string         `json:"unit"`
	Category      string         `json:"category"`
	TotalQuantity int            `json:"total_quantity"`
	Residents     []ResidentNeed `json:"residents"`
}

// ProductNeed um produto dentro da visão por residente.
type ProductNeed struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	Unit              string `json:"unit"`
	SuggestedQuantity int    `json:"suggested_quantity"`
	Balance           int    `json:"balance"`
	Overridden        bool   `json:"overridden"`
}

// ResidentLine item da visão por residente.
type ResidentLine struct {
	ResidentID   string        `json:"resident_id"`
	ResidentName string        `json:"resident_name"`
	Products     []ProductNeed `json:"products"`
}

// FacilityShortage produto com estoque geral no mínimo ou abaixo.
type FacilityShortage struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	Deficit      int    `json:"deficit"` // MinStock - CurrentStock (>= 0)
}

// Plan resultado do planejador.
type Plan struct {
	Threshold  int                `json:"threshold"`
	ByProduct  []ProductLine      `json:"by_product"`
	ByResident []ResidentLine     `json:"by_resident"`
	Facility   []FacilityShortage `json:"facility"`
}

// Build monta o plano. Prescrições de produto removido ou de residente
// inativo/desconhecido ficam de fora das duas visões.
func Build(in Input) Plan {
	products := make(map[string]entity.Product, len(in.Products))
	for _, p := range in.Products {
		products[p.ID] = p
	}
	residents := make(map[string]entity.Resident, len(in.Residents))
	for _, r := range in.Residents {
		if r.Active {
			residents[r.ID] = r
		}
	}

	type pairNeed struct {
		key       Key
		suggested int
		balance   int
	}
	var order []Key
	needs := map[Key]*pairNeed{}

	for _, rx := range in.Prescriptions {
		if !rx.Active {
			continue
		}
		if _, ok := products[rx.ProductID]; !ok {
			continue
		}
		if _, ok := residents[rx.ResidentID]; !ok {
			continue
		}
		key := Key{ResidentID: rx.ResidentID, ProductID: rx.ProductID}
		if n, seen := needs[key]; seen {
			n.suggested += dosage.SuggestedMonthlyQuantity(rx.Dosage, rx.Frequency)
			continue
		}
		bal := in.Balances.PersonalBalance(rx.ResidentID, rx.ProductID)
		if bal > LowStockThreshold {
			continue
		}
		needs[key] = &pairNeed{
			key:       key,
			suggested: dosage.SuggestedMonthlyQuantity(rx.Dosage, rx.Frequency),
			balance:   bal,
		}
		order = append(order, key)
	}

	byProduct := map[string]*ProductLine{}
	byResident := map[string]*ResidentLine{}
	for _, key := range order {
		n := needs[key]
		qty, overridden := n.suggested, false
		if v, ok := in.Overrides[key]; ok && v > 0 {
			qty, overridden = v, true
		}
		p := products[key.ProductID]
		r := residents[key.ResidentID]

		pl, ok := byProduct[p.ID]
		if !ok {
			pl = &ProductLine{ProductID: p.ID, ProductName: p.Name, Unit: p.Unit, Category: p.Category}
			byProduct[p.ID] = pl
		}
		pl.TotalQuantity += qty
		pl.Residents = append(pl.Residents, ResidentNeed{
			ResidentID:        r.ID,
			ResidentName:      r.Name,
			SuggestedQuantity: qty,
			Balance:           n.balance,
			Overridden:        overridden,
		})

		rl, ok := byResident[r.ID]
		if !ok {
			rl = &ResidentLine{ResidentID: r.ID, ResidentName: r.Name}
			byResident[r.ID] = rl
		}
		rl.Products = append(rl.Products, ProductNeed{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Unit:              p.Unit,
			SuggestedQuantity: qty,
			Balance:           n.balance,
			Overridden:        overridden,
		})
	}

	plan := Plan{
		Threshold:  LowStockThreshold,
		ByProduct:  make([]ProductLine, 0, len(byProduct)),
		ByResident: make([]ResidentLine, 0, len(byResident)),
		Facility:   FacilityShortages(in.Products),
	}
	for _, pl := range byProduct {
		sort.SliceStable(pl.Residents, func(i, j int) bool {
			return lessByName(pl.Residents[i].ResidentName, pl.Residents[i].ResidentID,
				pl.Residents[j].ResidentName, pl.Residents[j].ResidentID)
		})
		plan.ByProduct = append(plan.ByProduct, *pl)
	}
	for _, rl := range byResident {
		sort.SliceStable(rl.Products, func(i, j int) bool {
			return lessByName(rl.Products[i].ProductName, rl.Products[i].ProductID,
				rl.Products[j].ProductName, rl.Products[j].ProductID)
		})
		plan.ByResident = append(plan.ByResident, *rl)
	}
	sort.Slice(plan.ByProduct, func(i, j int) bool {
		a, b := plan.ByProduct[i], plan.ByProduct[j]
		return lessByName(a.ProductName, a.ProductID, b.ProductName, b.ProductID)
	})
	sort.Slice(plan.ByResident, func(i, j int) bool {
		a, b := plan.ByResident[i], plan.ByResident[j]
		return lessByName(a.ResidentName, a.ResidentID, b.ResidentName, b.ResidentID)
	})
	return plan
}

// FacilityShortages produtos com CurrentStock <= MinStock, ordenados por nome.
func FacilityShortages(products []entity.Product) []FacilityShortage {
	out := []FacilityShortage{}
	for _, p := range products {
		if !p.BelowMinimum() {
			continue
		}
		out = append(out, FacilityShortage{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Unit:         p.Unit,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Deficit:      p.MinStock - p.CurrentStock,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessByName(out[i].ProductName, out[i].ProductID, out[j].ProductName, out[j].ProductID)
	})
	return out
}

// lessByName ordem alfabética sem diferenciar maiúsculas; empate pelo ID.
func lessByName(nameA, idA, nameB, idB string) bool {
	a, b := collate(nameA), collate(nameB)
	if a != b {
		return a < b
	}
	return idA < idB
}
