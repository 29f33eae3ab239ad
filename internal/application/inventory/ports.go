package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/replenishment"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
)

// TxRunner executa fn numa transação, com repositórios atados a ela.
// Erro em fn (ou no commit) desfaz tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		rxRepo repository.PrescriptionRepository,
	) error) error
}

// TreatmentCompletedEvent aviso de tratamento encerrado por saldo esgotado.
type TreatmentCompletedEvent struct {
	EventID        string      `json:"event_id"`
	PrescriptionID string      `json:"prescription_id"`
	ResidentID     string      `json:"resident_id"`
	ProductID      string      `json:"product_id"`
	MovementID     string      `json:"movement_id"`
	Date           entity.Date `json:"date"`
	Balance        int         `json:"balance"`
	AdministeredBy string      `json:"administered_by,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

// Notifier entrega avisos para fora do serviço (ex.: Kafka).
type Notifier interface {
	TreatmentCompleted(ctx context.Context, event TreatmentCompletedEvent) error
}

// Metrics contadores operacionais.
type Metrics interface {
	MovementRecorded(kind entity.MovementKind)
	MovementEdited(applied bool)
	MovementDeleted(applied bool)
	DoseAdministered(treatmentCompleted bool)
	LedgerDrift(products int)
}

// PlanPDFGenerator gera o documento da lista de reposição.
type PlanPDFGenerator interface {
	GeneratePlanPDF(ctx context.Context, plan replenishment.Plan, generatedOn entity.Date) ([]byte, error)
}

type nopNotifier struct{}

func (nopNotifier) TreatmentCompleted(context.Context, TreatmentCompletedEvent) error { return nil }

type nopMetrics struct{}

func (nopMetrics) MovementRecorded(entity.MovementKind) {}
func (nopMetrics) MovementEdited(bool)                  {}
func (nopMetrics) MovementDeleted(bool)                 {}
func (nopMetrics) DoseAdministered(bool)                {}
func (nopMetrics) LedgerDrift(int)                      {}
