// Package memory guarda catálogo e histórico em memória. Serve ao driver
// STORAGE_DRIVER=memory e como fake nos testes.
package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

type state struct {
	movements     []entity.Movement
	products      map[string]entity.Product
	prescriptions map[string]entity.Prescription
	residents     map[string]entity.Resident
}

func newState() *state {
	return &state{
		products:      map[string]entity.Product{},
		prescriptions: map[string]entity.Prescription{},
		residents:     map[string]entity.Resident{},
	}
}

func (s *state) clone() *state {
	c := newState()
	c.movements = append([]entity.Movement(nil), s.movements...)
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.prescriptions {
		c.prescriptions[k] = v
	}
	for k, v := range s.residents {
		c.residents[k] = v
	}
	return c
}

// DB banco em memória protegido por mutex.
type DB struct {
	mu sync.Mutex
	st *state
}

// NewDB banco vazio.
func NewDB() *DB {
	return &DB{st: newState()}
}

// Seed formato de carga (mesmo JSON persistido pela API).
type Seed struct {
	Residents     []entity.Resident     `json:"residents"`
	Products      []entity.Product      `json:"products"`
	Prescriptions []entity.Prescription `json:"prescriptions"`
	Movements     []entity.Movement     `json:"movements"`
}

// Load acrescenta os registros da carga, substituindo IDs repetidos do catálogo.
func (db *DB) Load(seed Seed) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, r := range seed.Residents {
		db.st.residents[r.ID] = r
	}
	for _, p := range seed.Products {
		db.st.products[p.ID] = p
	}
	for _, p := range seed.Prescriptions {
		db.st.prescriptions[p.ID] = p
	}
	db.st.movements = append(db.st.movements, seed.Movements...)
}

// LoadJSON lê uma carga JSON.
func (db *DB) LoadJSON(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}
	db.Load(seed)
	return nil
}

// Snapshot cópia do conteúdo atual, com catálogo ordenado por ID.
func (db *DB) Snapshot() Seed {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := Seed{Movements: append([]entity.Movement(nil), db.st.movements...)}
	for _, r := range db.st.residents {
		out.Residents = append(out.Residents, r)
	}
	for _, p := range db.st.products {
		out.Products = append(out.Products, p)
	}
	for _, p := range db.st.prescriptions {
		out.Prescriptions = append(out.Prescriptions, p)
	}
	sort.Slice(out.Residents, func(i, j int) bool { return out.Residents[i].ID < out.Residents[j].ID })
	sort.Slice(out.Products, func(i, j int) bool { return out.Products[i].ID < out.Products[j].ID })
	sort.Slice(out.Prescriptions, func(i, j int) bool { return out.Prescriptions[i].ID < out.Prescriptions[j].ID })
	return out
}

// view executa fn com o estado travado.
func (db *DB) view(fn func(st *state) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.st)
}
