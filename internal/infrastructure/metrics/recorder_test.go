package metrics_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/metrics"
)

// value soma os valores (counter ou gauge) da família name com o rótulo informado.
func value(t *testing.T, reg *prometheus.Registry, name, label, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := label == ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == labelValue {
					match = true
				}
			}
			if !match {
				continue
			}
			if m.GetCounter() != nil {
				total += m.GetCounter().GetValue()
			}
			if m.GetGauge() != nil {
				total += m.GetGauge().GetValue()
			}
		}
	}
	return total
}

func TestRecorder_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.MovementRecorded(entity.MovementIN)
	r.MovementRecorded(entity.MovementIN)
	r.MovementRecorded(entity.MovementOUT)
	r.MovementEdited(false)
	r.MovementDeleted(true)
	r.DoseAdministered(true)
	r.LedgerDrift(3)

	assert.Equal(t, 2.0, value(t, reg, "estoque_movements_recorded_total", "kind", "IN"))
	assert.Equal(t, 1.0, value(t, reg, "estoque_movements_recorded_total", "kind", "OUT"))
	assert.Equal(t, 1.0, value(t, reg, "estoque_movements_edited_total", "applied", "false"))
	assert.Equal(t, 1.0, value(t, reg, "estoque_movements_deleted_total", "applied", "true"))
	assert.Equal(t, 1.0, value(t, reg, "estoque_doses_administered_total", "treatment_completed", "true"))
	assert.Equal(t, 3.0, value(t, reg, "estoque_ledger_drift_products", "", ""))
}

func TestRecorder_MiddlewareUsaPadraoDaRota(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	app := fiber.New()
	app.Use(r.Middleware())
	app.Get("/api/products/:id/stock", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/p1/stock", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 1.0, value(t, reg, "estoque_http_requests_total", "route", "/api/products/:id/stock"))
}
