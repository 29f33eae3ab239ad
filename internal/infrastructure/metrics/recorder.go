// Package metrics contadores prometheus do ledger e da API HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

const namespace = "estoque"

var _ inventory.Metrics = (*Recorder)(nil)

// Recorder implementa inventory.Metrics e mede as requisições HTTP.
type Recorder struct {
	movements      *prometheus.CounterVec
	edits          *prometheus.CounterVec
	deletes        *prometheus.CounterVec
	doses          *prometheus.CounterVec
	drift          prometheus.Gauge
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewRecorder cria e registra os coletores em reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_recorded_total",
			Help:      "Movimentações registradas por tipo",
		}, []string{"kind"}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_edited_total",
			Help:      "Edições de movimentação (applied=false quando o ID não existia)",
		}, []string{"applied"}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_deleted_total",
			Help:      "Exclusões de movimentação (applied=false quando o ID não existia)",
		}, []string{"applied"}),
		doses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doses_administered_total",
			Help:      "Doses administradas; treatment_completed indica encerramento",
		}, []string{"treatment_completed"}),
		drift: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_drift_products",
			Help:      "Produtos com contador divergente do histórico na última verificação",
		}),
		requestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(r.movements, r.edits, r.deletes, r.doses, r.drift, r.requestCounter, r.requestLatency)
	return r
}

func (r *Recorder) MovementRecorded(kind entity.MovementKind) {
	r.movements.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) MovementEdited(applied bool) {
	r.edits.WithLabelValues(strconv.FormatBool(applied)).Inc()
}

func (r *Recorder) MovementDeleted(applied bool) {
	r.deletes.WithLabelValues(strconv.FormatBool(applied)).Inc()
}

func (r *Recorder) DoseAdministered(treatmentCompleted bool) {
	r.doses.WithLabelValues(strconv.FormatBool(treatmentCompleted)).Inc()
}

func (r *Recorder) LedgerDrift(products int) {
	r.drift.Set(float64(products))
}

// Middleware mede contagem e latência por rota (padrão da rota, não o path bruto).
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		r.requestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		r.requestLatency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
