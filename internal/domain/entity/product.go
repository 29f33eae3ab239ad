package entity

// Product representa um insumo ou medicamento do catálogo da instituição.
// CurrentStock é o contador geral, mantido pelo ledger a partir das movimentações;
// MinStock é o ponto de reposição da casa.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"` // rótulo, sem conversão
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

// BelowMinimum indica estoque geral no ponto de reposição ou abaixo.
// Sem mínimo configurado (MinStock <= 0) só o estoque negativo conta.
func (p Product) BelowMinimum() bool {
	if p.MinStock <= 0 {
		return p.CurrentStock < 0
	}
	return p.CurrentStock <= p.MinStock
}
