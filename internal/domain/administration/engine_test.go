package administration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/administration"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/balance"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/ledger"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func storeWithBalance(t *testing.T, qty int) *ledger.Store {
	t.Helper()
	s := ledger.NewStore([]entity.Product{{ID: "P", Name: "Amoxicilina"}}, nil)
	if qty > 0 {
		_, err := s.Append(entity.Movement{Date: "2026-10-01", Kind: entity.MovementIN, ProductID: "P", ResidentID: "A", Quantity: qty})
		require.NoError(t, err)
	}
	return s
}

func engineFor(s *ledger.Store) *administration.Engine {
	return administration.NewEngine(s, time.UTC).WithClock(func() time.Time { return fixedNow })
}

func TestAdministerNow_TratamentoEncerraAoZerar(t *testing.T) {
	s := storeWithBalance(t, 1)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "1", Frequency: "8/8h", Active: true, IsTreatment: true}

	res, err := engineFor(s).AdministerNow(rx)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Balance)
	assert.True(t, res.TreatmentCompleted)
	assert.False(t, rx.Active, "prescrição deve ser encerrada")
	assert.Equal(t, entity.PrescriptionClosed, res.Prescription.State())
	assert.Equal(t, 0, balance.PersonalBalance(s.Movements(), "A", "P"))
}

func TestAdministerNow_TratamentoContinuaComSaldo(t *testing.T) {
	s := storeWithBalance(t, 5)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "1", Active: true, IsTreatment: true}

	res, err := engineFor(s).AdministerNow(rx)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Balance)
	assert.False(t, res.TreatmentCompleted)
	assert.True(t, rx.Active)
}

func TestAdministerNow_UsoContinuoNuncaEncerra(t *testing.T) {
	s := storeWithBalance(t, 0)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "2cp", Active: true}

	res, err := engineFor(s).AdministerNow(rx)
	require.NoError(t, err)
	assert.Equal(t, -2, res.Balance)
	assert.False(t, res.TreatmentCompleted)
	assert.True(t, rx.Active)
}

func TestAdministerNow_GravaSaidaDoDia(t *testing.T) {
	s := storeWithBalance(t, 10)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "2 comprimidos", Active: true}

	res, err := engineFor(s).AdministerNow(rx)
	require.NoError(t, err)

	m := res.Movement
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, entity.MovementOUT, m.Kind)
	assert.Equal(t, 2, m.Quantity)
	assert.Equal(t, entity.Date("2026-10-14"), m.Date)
	assert.Equal(t, "Administração Diária: 2 comprimidos", m.Notes)
	p, _ := s.Product("P")
	assert.Equal(t, 8, p.CurrentStock)
}

func TestAdministerNow_NaoIdempotente(t *testing.T) {
	s := storeWithBalance(t, 10)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "1", Active: true}
	e := engineFor(s)

	_, err := e.AdministerNow(rx)
	require.NoError(t, err)
	res, err := e.AdministerNow(rx)
	require.NoError(t, err)

	assert.Equal(t, 8, res.Balance, "duas chamadas registram duas administrações")
	assert.Equal(t, 3, s.Len())
	assert.True(t, administration.AdministeredOn(s.Movements(), *rx, "2026-10-14"))
	assert.False(t, administration.AdministeredOn(s.Movements(), *rx, "2026-10-13"))
}

func TestAdministerNow_PrescricaoEncerradaRejeitada(t *testing.T) {
	s := storeWithBalance(t, 3)
	rx := &entity.Prescription{ID: "rx", ResidentID: "A", ProductID: "P", Dosage: "1", Active: false, IsTreatment: true}

	_, err := engineFor(s).AdministerNow(rx)
	assert.ErrorIs(t, err, domain.ErrPrescriptionClosed)
	assert.Equal(t, 1, s.Len(), "nenhuma movimentação nova")
}

func TestAdministerNow_EntradaInvalida(t *testing.T) {
	s := storeWithBalance(t, 3)
	_, err := engineFor(s).AdministerNow(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = engineFor(s).AdministerNow(&entity.Prescription{ProductID: "P", Active: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdministerNow_UsaFusoConfigurado(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	s := storeWithBalance(t, 3)
	late := time.Date(2026, 10, 15, 1, 0, 0, 0, time.UTC) // 22h do dia 14 em BRT
	e := administration.NewEngine(s, loc).WithClock(func() time.Time { return late })

	res, err := e.AdministerNow(&entity.Prescription{ResidentID: "A", ProductID: "P", Dosage: "1", Active: true})
	require.NoError(t, err)
	assert.Equal(t, entity.Date("2026-10-14"), res.Movement.Date)
}

func TestDoseQuantity(t *testing.T) {
	cases := map[string]int{
		"1":        1,
		"2cp":      2,
		" 10 ml":   10,
		"0.5":      1,
		"0":        1,
		"":         1,
		"meio":     1,
		"3,5 gts":  3,
	}
	for in, want := range cases {
		assert.Equal(t, want, administration.DoseQuantity(in), "dosagem %q", in)
	}
}

func TestNote(t *testing.T) {
	assert.Equal(t, "Administração Diária", administration.Note("  "))
	assert.Equal(t, "Administração Diária: 1cp", administration.Note("1cp"))
}
