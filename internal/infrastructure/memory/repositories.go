package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

var (
	_ repository.MovementRepository     = (*MovementRepo)(nil)
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)
	_ repository.ResidentRepository     = (*ResidentRepo)(nil)
)

// access abstrai "banco travado" e "estado de transação" para os repositórios.
type access func(fn func(st *state) error) error

func direct(st *state) access {
	return func(fn func(st *state) error) error { return fn(st) }
}

// MovementRepo histórico em memória.
type MovementRepo struct{ with access }

// ProductRepo catálogo em memória.
type ProductRepo struct{ with access }

// PrescriptionRepo prescrições em memória.
type PrescriptionRepo struct{ with access }

// ResidentRepo roster em memória.
type ResidentRepo struct{ with access }

func (db *DB) Movements() *MovementRepo         { return &MovementRepo{with: db.view} }
func (db *DB) Products() *ProductRepo           { return &ProductRepo{with: db.view} }
func (db *DB) Prescriptions() *PrescriptionRepo { return &PrescriptionRepo{with: db.view} }
func (db *DB) Residents() *ResidentRepo         { return &ResidentRepo{with: db.view} }

func (r *MovementRepo) ListAll(_ context.Context) ([]entity.Movement, error) {
	var out []entity.Movement
	err := r.with(func(st *state) error {
		out = append([]entity.Movement(nil), st.movements...)
		return nil
	})
	return out, err
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	return r.with(func(st *state) error {
		for _, existing := range st.movements {
			if existing.ID == m.ID {
				return domain.ErrDuplicate
			}
		}
		st.movements = append(st.movements, *m)
		return nil
	})
}

func (r *MovementRepo) Update(_ context.Context, m *entity.Movement) error {
	return r.with(func(st *state) error {
		for i := range st.movements {
			if st.movements[i].ID == m.ID {
				st.movements[i] = *m
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *MovementRepo) Delete(_ context.Context, id string) error {
	return r.with(func(st *state) error {
		for i := range st.movements {
			if st.movements[i].ID == id {
				st.movements = append(st.movements[:i], st.movements[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *ProductRepo) ListAll(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := r.with(func(st *state) error {
		for _, p := range st.products {
			out = append(out, p)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *ProductRepo) UpdateStock(_ context.Context, productID string, currentStock int) error {
	return r.with(func(st *state) error {
		p, ok := st.products[productID]
		if !ok {
			return domain.ErrNotFound
		}
		p.CurrentStock = currentStock
		st.products[productID] = p
		return nil
	})
}

// Upsert grava o produto (CRUD externo do catálogo).
func (r *ProductRepo) Upsert(_ context.Context, p entity.Product) error {
	return r.with(func(st *state) error {
		st.products[p.ID] = p
		return nil
	})
}

// GetByID devolve nil, nil quando não existe. O retorno é uma cópia.
func (r *PrescriptionRepo) GetByID(_ context.Context, id string) (*entity.Prescription, error) {
	var out *entity.Prescription
	err := r.with(func(st *state) error {
		if p, ok := st.prescriptions[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro do TxRunner o banco já está travado; igual a GetByID.
func (r *PrescriptionRepo) GetForUpdate(ctx context.Context, id string) (*entity.Prescription, error) {
	return r.GetByID(ctx, id)
}

func (r *PrescriptionRepo) ListActive(_ context.Context) ([]entity.Prescription, error) {
	var out []entity.Prescription
	err := r.with(func(st *state) error {
		for _, p := range st.prescriptions {
			if p.Active {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *PrescriptionRepo) SetActive(_ context.Context, id string, active bool) error {
	return r.with(func(st *state) error {
		p, ok := st.prescriptions[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.Active = active
		st.prescriptions[id] = p
		return nil
	})
}

func (r *ResidentRepo) ListActive(_ context.Context) ([]entity.Resident, error) {
	var out []entity.Resident
	err := r.with(func(st *state) error {
		for _, res := range st.residents {
			if res.Active {
				out = append(out, res)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}
