package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/memory"
)

const seedJSON = `{
  "residents": [{"id": "r1", "name": "Ana", "active": true}, {"id": "r2", "name": "Bia", "active": false}],
  "products": [{"id": "p1", "name": "Dipirona", "current_stock": 10, "min_stock": 2}],
  "prescriptions": [
    {"id": "rx1", "resident_id": "r1", "product_id": "p1", "dosage": "1", "frequency": "8/8h", "active": true},
    {"id": "rx2", "resident_id": "r1", "product_id": "p1", "active": false}
  ],
  "movements": [{"id": "m1", "date": "2024-03-01", "kind": "IN", "product_id": "p1", "resident_id": "r1", "quantity": 10}]
}`

func seeded(t *testing.T) *memory.DB {
	t.Helper()
	db := memory.NewDB()
	require.NoError(t, db.LoadJSON(strings.NewReader(seedJSON)))
	return db
}

func TestLoadJSON_E_Listagens(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	movs, err := db.Movements().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.Date("2024-03-01"), movs[0].Date)

	rxs, err := db.Prescriptions().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, rxs, 1)
	assert.Equal(t, "rx1", rxs[0].ID)

	res, err := db.Residents().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "r1", res[0].ID)
}

func TestLoadJSON_Invalido(t *testing.T) {
	assert.Error(t, memory.NewDB().LoadJSON(strings.NewReader("{")))
}

func TestMovementRepo_CRUD(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	repo := db.Movements()

	m := entity.Movement{ID: "m2", Date: "2024-03-02", Kind: entity.MovementOUT, ProductID: "p1", Quantity: 1}
	require.NoError(t, repo.Create(ctx, &m))
	assert.ErrorIs(t, repo.Create(ctx, &m), domain.ErrDuplicate)

	m.Quantity = 3
	require.NoError(t, repo.Update(ctx, &m))
	require.NoError(t, repo.Delete(ctx, "m1"))
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), domain.ErrNotFound)

	movs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 3, movs[0].Quantity)
}

func TestPrescriptionRepo_GetByIDDevolveCopia(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	rx, err := db.Prescriptions().GetByID(ctx, "rx1")
	require.NoError(t, err)
	rx.Active = false

	again, err := db.Prescriptions().GetByID(ctx, "rx1")
	require.NoError(t, err)
	assert.True(t, again.Active)

	missing, err := db.Prescriptions().GetByID(ctx, "nada")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTxRunner_CommitERollback(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	tx := memory.NewTxRunner(db)

	err := tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, rxRepo repository.PrescriptionRepository) error {
		require.NoError(t, productRepo.UpdateStock(ctx, "p1", 99))
		require.NoError(t, rxRepo.SetActive(ctx, "rx1", false))
		return errors.New("falhou")
	})
	require.Error(t, err)
	snap := db.Snapshot()
	assert.Equal(t, 10, snap.Products[0].CurrentStock)
	assert.True(t, snap.Prescriptions[0].Active)

	err = tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, rxRepo repository.PrescriptionRepository) error {
		return productRepo.UpdateStock(ctx, "p1", 99)
	})
	require.NoError(t, err)
	assert.Equal(t, 99, db.Snapshot().Products[0].CurrentStock)
}

func TestProductRepo_UpdateStockDesconhecido(t *testing.T) {
	db := seeded(t)
	assert.ErrorIs(t, db.Products().UpdateStock(context.Background(), "x", 1), domain.ErrNotFound)
}
