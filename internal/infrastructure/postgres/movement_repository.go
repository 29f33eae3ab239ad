package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo histórico de movimentações (pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// ListAll todo o histórico na ordem de gravação.
func (r *MovementRepo) ListAll(ctx context.Context) ([]entity.Movement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, date, kind, product_id, resident_id, quantity, notes
		FROM stock_movements ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var (
			m        entity.Movement
			date     time.Time
			kind     string
			resident *string
			notes    *string
		)
		if err := rows.Scan(&m.ID, &date, &kind, &m.ProductID, &resident, &m.Quantity, &notes); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Date = dateFromDB(date)
		m.Kind = entity.MovementKind(kind)
		m.ResidentID = deref(resident)
		m.Notes = deref(notes)
		list = append(list, m)
	}
	return list, rows.Err()
}

// Create grava uma movimentação já validada pelo ledger.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, date, kind, product_id, resident_id, quantity, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Date.Time(), string(m.Kind), m.ProductID, nullable(m.ResidentID), m.Quantity, nullable(m.Notes),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// Update reescreve todos os campos da movimentação, preservando a posição no histórico.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock_movements
		SET date = $2, kind = $3, product_id = $4, resident_id = $5, quantity = $6, notes = $7, updated_at = now()
		WHERE id = $1`,
		m.ID, m.Date.Time(), string(m.Kind), m.ProductID, nullable(m.ResidentID), m.Quantity, nullable(m.Notes),
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a movimentação.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
