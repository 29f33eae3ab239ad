package repository

import (
	"context"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// MovementRepository porta de persistência do histórico de movimentações.
type MovementRepository interface {
	ListAll(ctx context.Context) ([]entity.Movement, error)
	Create(ctx context.Context, m *entity.Movement) error
	Update(ctx context.Context, m *entity.Movement) error
	Delete(ctx context.Context, id string) error
}
