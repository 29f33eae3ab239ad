package entity

// Resident residente da instituição (somente o necessário para o estoque).
type Resident struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
