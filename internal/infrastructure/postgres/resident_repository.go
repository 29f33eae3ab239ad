package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

var _ repository.ResidentRepository = (*ResidentRepo)(nil)

// ResidentRepo leitura do cadastro de residentes.
type ResidentRepo struct {
	q Querier
}

func NewResidentRepository(q Querier) *ResidentRepo {
	return &ResidentRepo{q: q}
}

// ListActive residentes ativos.
func (r *ResidentRepo) ListActive(ctx context.Context) ([]entity.Resident, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, active FROM residents WHERE active ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer rows.Close()

	var list []entity.Resident
	for rows.Next() {
		var res entity.Resident
		if err := rows.Scan(&res.ID, &res.Name, &res.Active); err != nil {
			return nil, fmt.Errorf("scan resident: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}
