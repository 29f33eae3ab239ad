package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

var _ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)

const prescriptionColumns = `id, resident_id, product_id, COALESCE(dosage, ''), COALESCE(frequency, ''), active, is_treatment`

// PrescriptionRepo prescrições sobre PostgreSQL (pool ou tx).
type PrescriptionRepo struct {
	q Querier
}

// NewPrescriptionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPrescriptionRepository(q Querier) *PrescriptionRepo {
	return &PrescriptionRepo{q: q}
}

func scanPrescription(row pgx.Row) (entity.Prescription, error) {
	var p entity.Prescription
	err := row.Scan(&p.ID, &p.ResidentID, &p.ProductID, &p.Dosage, &p.Frequency, &p.Active, &p.IsTreatment)
	return p, err
}

// GetByID devolve nil, nil quando a prescrição não existe.
func (r *PrescriptionRepo) GetByID(ctx context.Context, id string) (*entity.Prescription, error) {
	return r.get(ctx, `SELECT `+prescriptionColumns+` FROM prescriptions WHERE id = $1`, id)
}

// GetForUpdate como GetByID, com FOR UPDATE. Só faz sentido dentro de tx.
func (r *PrescriptionRepo) GetForUpdate(ctx context.Context, id string) (*entity.Prescription, error) {
	return r.get(ctx, `SELECT `+prescriptionColumns+` FROM prescriptions WHERE id = $1 FOR UPDATE`, id)
}

func (r *PrescriptionRepo) get(ctx context.Context, query, id string) (*entity.Prescription, error) {
	p, err := scanPrescription(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return &p, nil
}

// ListActive prescrições ativas.
func (r *PrescriptionRepo) ListActive(ctx context.Context) ([]entity.Prescription, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+prescriptionColumns+` FROM prescriptions WHERE active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	var list []entity.Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetActive abre ou encerra a prescrição.
func (r *PrescriptionRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE prescriptions SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("set prescription active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
