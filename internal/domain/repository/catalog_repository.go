package repository

import (
	"context"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// ProductRepository porta do catálogo de produtos. Só o contador de estoque é
// escrito pelo ledger; o restante do cadastro pertence ao CRUD externo.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
	UpdateStock(ctx context.Context, productID string, currentStock int) error
}

// PrescriptionRepository porta do catálogo de prescrições.
// GetByID e GetForUpdate devolvem nil, nil quando não existe. GetForUpdate
// trava a linha até o fim da transação corrente.
type PrescriptionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Prescription, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Prescription, error)
	ListActive(ctx context.Context) ([]entity.Prescription, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// ResidentRepository porta do cadastro de residentes (somente leitura).
type ResidentRepository interface {
	ListActive(ctx context.Context) ([]entity.Resident, error)
}
