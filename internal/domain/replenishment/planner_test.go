package replenishment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/replenishment"
)

// fakeBalances saldo fixo por par.
type fakeBalances map[replenishment.Key]int

func (f fakeBalances) PersonalBalance(residentID, productID string) int {
	return f[replenishment.Key{ResidentID: residentID, ProductID: productID}]
}

func key(r, p string) replenishment.Key {
	return replenishment.Key{ResidentID: r, ProductID: p}
}

func baseInput() replenishment.Input {
	return replenishment.Input{
		Products: []entity.Product{
			{ID: "P", Name: "Losartana 50mg", Unit: "cp", CurrentStock: 40, MinStock: 20},
			{ID: "Q", Name: "Álcool 70%", Unit: "ml", CurrentStock: 3, MinStock: 10},
			{ID: "F", Name: "Fralda G", Unit: "un", CurrentStock: 0},
		},
		Residents: []entity.Resident{
			{ID: "R", Name: "Rosa", Active: true},
			{ID: "S", Name: "Sebastião", Active: true},
			{ID: "T", Name: "antônio", Active: true},
			{ID: "X", Name: "Xavier", Active: false},
		},
		Prescriptions: []entity.Prescription{
			{ID: "rx1", ResidentID: "R", ProductID: "P", Dosage: "1", Frequency: "12/12h", Active: true},
			{ID: "rx2", ResidentID: "S", ProductID: "P", Dosage: "1", Frequency: "8/8h", Active: true},
		},
		Balances: fakeBalances{key("R", "P"): 3, key("S", "P"): 10},
	}
}

func TestBuild_SomenteSaldoBaixoEntra(t *testing.T) {
	plan := replenishment.Build(baseInput())

	require.Len(t, plan.ByProduct, 1)
	line := plan.ByProduct[0]
	assert.Equal(t, "P", line.ProductID)
	require.Len(t, line.Residents, 1, "S tem saldo 10 e não entra")
	assert.Equal(t, replenishment.ResidentNeed{
		ResidentID: "R", ResidentName: "Rosa", SuggestedQuantity: 60, Balance: 3,
	}, line.Residents[0])
	assert.Equal(t, 60, line.TotalQuantity)

	require.Len(t, plan.ByResident, 1)
	assert.Equal(t, "R", plan.ByResident[0].ResidentID)
	assert.Equal(t, replenishment.LowStockThreshold, plan.Threshold)
}

func TestBuild_LimiteInclusivo(t *testing.T) {
	in := baseInput()
	in.Balances = fakeBalances{key("R", "P"): 5, key("S", "P"): 6}
	plan := replenishment.Build(in)
	require.Len(t, plan.ByProduct, 1)
	require.Len(t, plan.ByProduct[0].Residents, 1)
	assert.Equal(t, "R", plan.ByProduct[0].Residents[0].ResidentID)
}

func TestBuild_SaldoNegativoEntra(t *testing.T) {
	in := baseInput()
	in.Balances = fakeBalances{key("R", "P"): -4, key("S", "P"): 0}
	plan := replenishment.Build(in)
	require.Len(t, plan.ByProduct, 1)
	assert.Len(t, plan.ByProduct[0].Residents, 2)
	assert.Equal(t, 60+90, plan.ByProduct[0].TotalQuantity)
	assert.Equal(t, -4, plan.ByProduct[0].Residents[0].Balance)
}

func TestBuild_OverrideSubstituiNasDuasVisoes(t *testing.T) {
	in := baseInput()
	in.Overrides = replenishment.Overrides{key("R", "P"): 14}
	plan := replenishment.Build(in)

	require.Len(t, plan.ByProduct, 1)
	assert.Equal(t, 14, plan.ByProduct[0].TotalQuantity)
	assert.True(t, plan.ByProduct[0].Residents[0].Overridden)
	require.Len(t, plan.ByResident[0].Products, 1)
	assert.Equal(t, 14, plan.ByResident[0].Products[0].SuggestedQuantity)
	assert.True(t, plan.ByResident[0].Products[0].Overridden)
}

func TestBuild_OverrideNaoPositivoIgnorado(t *testing.T) {
	in := baseInput()
	in.Overrides = replenishment.Overrides{key("R", "P"): 0}
	plan := replenishment.Build(in)
	assert.Equal(t, 60, plan.ByProduct[0].TotalQuantity)
	assert.False(t, plan.ByProduct[0].Residents[0].Overridden)
}

func TestBuild_ExcluiProdutoRemovidoResidenteInativoEPrescricaoInativa(t *testing.T) {
	in := baseInput()
	in.Prescriptions = append(in.Prescriptions,
		entity.Prescription{ID: "rx3", ResidentID: "R", ProductID: "removido", Dosage: "1", Frequency: "1x", Active: true},
		entity.Prescription{ID: "rx4", ResidentID: "X", ProductID: "P", Dosage: "1", Frequency: "1x", Active: true},
		entity.Prescription{ID: "rx5", ResidentID: "desconhecido", ProductID: "P", Dosage: "1", Frequency: "1x", Active: true},
		entity.Prescription{ID: "rx6", ResidentID: "S", ProductID: "Q", Dosage: "1", Frequency: "1x", Active: false},
	)
	plan := replenishment.Build(in)

	require.Len(t, plan.ByProduct, 1)
	assert.Equal(t, "P", plan.ByProduct[0].ProductID)
	assert.Len(t, plan.ByProduct[0].Residents, 1)
	require.Len(t, plan.ByResident, 1)
	assert.Len(t, plan.ByResident[0].Products, 1)
}

func TestBuild_OrdenacaoAlfabetica(t *testing.T) {
	in := baseInput()
	in.Prescriptions = []entity.Prescription{
		{ID: "1", ResidentID: "S", ProductID: "P", Dosage: "1", Frequency: "1x", Active: true},
		{ID: "2", ResidentID: "R", ProductID: "P", Dosage: "1", Frequency: "1x", Active: true},
		{ID: "3", ResidentID: "T", ProductID: "Q", Dosage: "1", Frequency: "1x", Active: true},
		{ID: "4", ResidentID: "T", ProductID: "P", Dosage: "1", Frequency: "1x", Active: true},
		{ID: "5", ResidentID: "R", ProductID: "F", Dosage: "1", Frequency: "1x", Active: true},
	}
	in.Balances = fakeBalances{}
	plan := replenishment.Build(in)

	var products []string
	for _, l := range plan.ByProduct {
		products = append(products, l.ProductName)
	}
	assert.Equal(t, []string{"Álcool 70%", "Fralda G", "Losartana 50mg"}, products)

	var residentsOfP []string
	for _, r := range plan.ByProduct[2].Residents {
		residentsOfP = append(residentsOfP, r.ResidentName)
	}
	assert.Equal(t, []string{"antônio", "Rosa", "Sebastião"}, residentsOfP)

	var residents []string
	for _, l := range plan.ByResident {
		residents = append(residents, l.ResidentName)
	}
	assert.Equal(t, []string{"antônio", "Rosa", "Sebastião"}, residents)

	var rosa []string
	for _, p := range plan.ByResident[1].Products {
		rosa = append(rosa, p.ProductName)
	}
	assert.Equal(t, []string{"Fralda G", "Losartana 50mg"}, rosa)
}

func TestBuild_PrescricoesRepetidasSomamNoMesmoPar(t *testing.T) {
	in := baseInput()
	in.Prescriptions = append(in.Prescriptions,
		entity.Prescription{ID: "rx1b", ResidentID: "R", ProductID: "P", Dosage: "1", Frequency: "uma vez", Active: true})
	plan := replenishment.Build(in)

	require.Len(t, plan.ByProduct[0].Residents, 1, "um item por par residente/produto")
	assert.Equal(t, 60+30, plan.ByProduct[0].Residents[0].SuggestedQuantity)
	assert.Len(t, plan.ByResident[0].Products, 1)
}

func TestBuild_Vazio(t *testing.T) {
	plan := replenishment.Build(replenishment.Input{Balances: fakeBalances{}})
	assert.NotNil(t, plan.ByProduct)
	assert.NotNil(t, plan.ByResident)
	assert.Empty(t, plan.ByProduct)
	assert.Empty(t, plan.Facility)
}

func TestFacilityShortages(t *testing.T) {
	got := replenishment.FacilityShortages([]entity.Product{
		{ID: "P", Name: "Losartana", CurrentStock: 40, MinStock: 20},
		{ID: "Q", Name: "Álcool", CurrentStock: 3, MinStock: 10},
		{ID: "F", Name: "Fralda", CurrentStock: 0},
		{ID: "N", Name: "Gaze", CurrentStock: -2},
		{ID: "M", Name: "Bandagem", CurrentStock: 10, MinStock: 10},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "Q", got[0].ProductID)
	assert.Equal(t, 7, got[0].Deficit)
	assert.Equal(t, "M", got[1].ProductID)
	assert.Equal(t, 0, got[1].Deficit)
	assert.Equal(t, "N", got[2].ProductID)
	assert.Equal(t, 2, got[2].Deficit)
}
