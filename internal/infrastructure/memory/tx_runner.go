package memory

import (
	"context"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner transação sobre uma cópia do estado; a cópia só substitui o
// original quando fn termina sem erro.
type TxRunner struct {
	db *DB
}

func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	rxRepo repository.PrescriptionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	staged := r.db.st.clone()
	with := direct(staged)
	if err := fn(&MovementRepo{with: with}, &ProductRepo{with: with}, &PrescriptionRepo{with: with}); err != nil {
		return err
	}
	r.db.st = staged
	return nil
}
