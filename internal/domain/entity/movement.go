package entity

// MovementKind tipo de movimentação de estoque.
type MovementKind string

// Tipos de movimentação.
const (
	MovementIN  MovementKind = "IN"  // entrada
	MovementOUT MovementKind = "OUT" // saída
)

// Valid indica se o tipo é IN ou OUT.
func (k MovementKind) Valid() bool {
	return k == MovementIN || k == MovementOUT
}

// Movement representa uma movimentação de estoque (entrada ou saída).
// ResidentID vazio indica movimentação da casa (sem residente).
type Movement struct {
	ID         string       `json:"id"`
	Date       Date         `json:"date"`
	Kind       MovementKind `json:"kind"`
	ProductID  string       `json:"product_id"`
	ResidentID string       `json:"resident_id"`
	Quantity   int          `json:"quantity"` // sempre > 0; o sinal vem de Kind
	Notes      string       `json:"notes,omitempty"`
}

// SignedQuantity +Quantity para IN, -Quantity para OUT.
func (m Movement) SignedQuantity() int {
	if m.Kind == MovementOUT {
		return -m.Quantity
	}
	return m.Quantity
}

// IsHouse indica movimentação sem residente.
func (m Movement) IsHouse() bool { return m.ResidentID == "" }
