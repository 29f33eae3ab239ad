package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/dto"
	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/replenishment"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Estoque-Residencial-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Estoque-Residencial-api/pkg/jwt"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/logger"
)

type eventSink struct {
	events []inventory.TreatmentCompletedEvent
}

func (e *eventSink) TreatmentCompleted(_ context.Context, ev inventory.TreatmentCompletedEvent) error {
	e.events = append(e.events, ev)
	return nil
}

func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	return newAPIWithLog(t, nil, logger.Nop())
}

func newAPIWithLog(t *testing.T, notifier inventory.Notifier, log *logger.Logger) *fiber.App {
	t.Helper()
	db := memory.NewDB()
	db.Load(memory.Seed{
		Residents: []entity.Resident{{ID: "r1", Name: "Ana", Active: true}},
		Products:  []entity.Product{{ID: "p1", Name: "Dipirona", Unit: "cp", MinStock: 5}},
		Prescriptions: []entity.Prescription{
			{ID: "rx1", ResidentID: "r1", ProductID: "p1", Dosage: "1", Frequency: "12/12h", Active: true, IsTreatment: true},
		},
	})
	svc, err := inventory.NewService(context.Background(), inventory.Deps{
		TxRunner:      memory.NewTxRunner(db),
		Movements:     db.Movements(),
		Products:      db.Products(),
		Prescriptions: db.Prescriptions(),
		Residents:     db.Residents(),
		Notifier:      notifier,
		Logger:        log,
		Location:      time.UTC,
		Now:           func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Service: svc, JWTSecret: testJWTSecret})
	return app
}

func call(t *testing.T, app *fiber.App, role, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestAPI_FluxoMovimentacaoESaldo(t *testing.T) {
	app := newAPI(t)

	for _, req := range []dto.MovementRequest{
		{Date: "2024-03-01", Kind: "IN", ProductID: "p1", ResidentID: "r1", Quantity: 10},
		{Date: "2024-03-02", Kind: "IN", ProductID: "p1", ResidentID: "r1", Quantity: 5},
		{Date: "2024-03-03", Kind: "OUT", ProductID: "p1", ResidentID: "r1", Quantity: 3},
	} {
		resp, _ := call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/movements", req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/residents/r1/products/p1/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bal dto.BalanceResponse
	require.NoError(t, json.Unmarshal(body, &bal))
	assert.Equal(t, 12, bal.Balance)

	resp, body = call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/products/p1/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock dto.ProductStockResponse
	require.NoError(t, json.Unmarshal(body, &stock))
	assert.Equal(t, 12, stock.CurrentStock)

	resp, body = call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/movements?resident_id=r1&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.MovementListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 3, list.Page.Total)
	require.Len(t, list.Movements, 2)
	assert.Equal(t, entity.Date("2024-03-03"), list.Movements[0].Date)

	resp, body = call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/movements?kind=OUT", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = dto.MovementListResponse{}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Page.Total)

	resp, _ = call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/movements?kind=AJUSTE", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ValidacaoRetorna400(t *testing.T) {
	app := newAPI(t)
	resp, body := call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/movements",
		dto.MovementRequest{Kind: "IN", ProductID: "p1", Quantity: -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestAPI_CuidadorNaoRegistraMovimentacao(t *testing.T) {
	app := newAPI(t)
	resp, _ := call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/movements",
		dto.MovementRequest{Kind: "IN", ProductID: "p1", Quantity: 1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_EditarInexistenteRespondeAppliedFalse(t *testing.T) {
	app := newAPI(t)
	resp, body := call(t, app, pkgjwt.RoleNurse, http.MethodPut, "/api/movements/nao-existe",
		dto.MovementRequest{Date: "2024-03-01", Kind: "IN", ProductID: "p1", Quantity: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res dto.MutationResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.False(t, res.Applied)

	resp, body = call(t, app, pkgjwt.RoleNurse, http.MethodDelete, "/api/movements/nao-existe", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &res))
	assert.False(t, res.Applied)
}

func TestAPI_SugestaoDeDosagem(t *testing.T) {
	app := newAPI(t)
	resp, body := call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/dosage/suggestion",
		dto.DosageSuggestionRequest{Dosage: "1", Frequency: "8/8h"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.EqualValues(t, 90, got["quantity"])
}

func TestAPI_PlanoEAdministracao(t *testing.T) {
	app := newAPI(t)

	resp, _ := call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/movements",
		dto.MovementRequest{Date: "2024-03-01", Kind: "IN", ProductID: "p1", ResidentID: "r1", Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/replenishment/plan", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var plan replenishment.Plan
	require.NoError(t, json.Unmarshal(body, &plan))
	require.Len(t, plan.ByProduct, 1)
	assert.Equal(t, 60, plan.ByProduct[0].TotalQuantity)

	resp, body = call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/prescriptions/rx1/administer", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, true, res["treatment_completed"])

	resp, body = call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/prescriptions/rx1/administer", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "PRESCRIPTION_CLOSED")

	resp, _ = call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/prescriptions/nada/administer", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_VerificarLedger(t *testing.T) {
	app := newAPI(t)
	resp, body := call(t, app, pkgjwt.RoleCaregiver, http.MethodGet, "/api/ledger/verify", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"consistent":true`)

	resp, _ = call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/ledger/reconcile", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_MutacoesRegistramAtorDoToken(t *testing.T) {
	var logs bytes.Buffer
	sink := &eventSink{}
	app := newAPIWithLog(t, sink, logger.NewWithWriter(&logs, logger.Config{Level: "info"}))

	resp, _ := call(t, app, pkgjwt.RoleNurse, http.MethodPost, "/api/movements",
		dto.MovementRequest{Date: "2024-03-01", Kind: "IN", ProductID: "p1", ResidentID: "r1", Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, logs.String(), `"user_id":"`+testUserID+`"`)
	assert.Contains(t, logs.String(), `"facility_id":"`+testFacilityID+`"`)

	resp, _ = call(t, app, pkgjwt.RoleCaregiver, http.MethodPost, "/api/prescriptions/rx1/administer", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, sink.events, 1)
	assert.Equal(t, testUserID, sink.events[0].AdministeredBy)
}
