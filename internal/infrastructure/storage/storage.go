// Package storage escolhe o backend de persistência conforme STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/config"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/logger"
)

// Backend repositórios e runner de transação de um driver.
type Backend struct {
	Driver        string
	TxRunner      inventory.TxRunner
	Movements     repository.MovementRepository
	Products      repository.ProductRepository
	Prescriptions repository.PrescriptionRepository
	Residents     repository.ResidentRepository
	close         func()
}

// Close libera conexões.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Deps preenche as dependências de persistência do serviço.
func (b *Backend) Deps(d inventory.Deps) inventory.Deps {
	d.TxRunner = b.TxRunner
	d.Movements = b.Movements
	d.Products = b.Products
	d.Prescriptions = b.Prescriptions
	d.Residents = b.Residents
	return d
}

// Open abre o backend configurado.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		db := memory.NewDB()
		if cfg.SeedFile != "" {
			f, err := os.Open(cfg.SeedFile)
			if err != nil {
				return nil, fmt.Errorf("abrir carga inicial: %w", err)
			}
			defer f.Close()
			if err := db.LoadJSON(f); err != nil {
				return nil, err
			}
		}
		log.Warn().Str("seed", cfg.SeedFile).Msg("armazenamento em memória: dados perdidos ao reiniciar")
		return &Backend{
			Driver:        config.StorageMemory,
			TxRunner:      memory.NewTxRunner(db),
			Movements:     db.Movements(),
			Products:      db.Products(),
			Prescriptions: db.Prescriptions(),
			Residents:     db.Residents(),
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:        config.StoragePostgres,
			TxRunner:      postgres.NewTxRunner(pool),
			Movements:     postgres.NewMovementRepository(pool),
			Products:      postgres.NewProductRepository(pool),
			Prescriptions: postgres.NewPrescriptionRepository(pool),
			Residents:     postgres.NewResidentRepository(pool),
			close:         pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.Storage)
}
