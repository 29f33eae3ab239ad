package dosage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/dosage"
)

func TestSuggestedMonthlyQuantity(t *testing.T) {
	cases := []struct {
		name      string
		dosage    string
		frequency string
		want      int
	}{
		{"comprimidos por dia na dosagem", "2cp por dia", "", 60},
		{"comprimidos por dia separado", "1 comprimido", "por dia", 30},
		{"comprimidos plural maiúsculo", "3 Comprimidos", "POR DIA", 90},
		{"cps", "2 cps por dia", "8/8h", 60},
		{"8 em 8 com barra", "1", "8/8h", 90},
		{"8 em 8 por extenso", "1", "8 em 8 horas", 90},
		{"vazio usa padrão", "", "", 30},
		{"meio comprimido 12/12", "0.5", "12/12h", 30},
		{"decimal com vírgula", "1,5", "12 em 12", 90},
		{"6 em 6", "1", "6/6h", 120},
		{"4 em 4", "2", "4 em 4h", 360},
		{"N vezes ao dia", "1", "3 vezes ao dia", 90},
		{"Nx ao dia", "2", "2x ao dia", 120},
		{"Nx a dia", "1", "4x a dia", 120},
		{"uma vez", "1", "uma vez ao dia", 30},
		{"diariamente", "2ml", "diariamente", 60},
		{"1x", "10ml", "1x", 300},
		{"duas vezes", "1", "duas vezes", 60},
		{"três vezes com acento", "1", "três vezes", 90},
		{"tres vezes sem acento", "1", "tres vezes", 90},
		{"3x", "1", "3x", 90},
		{"dosagem sem número", "meio", "8/8h", 90},
		{"frequência não reconhecida", "2", "se necessário", 30},
		{"dosagem zero cai para 1", "0", "12/12", 60},
		{"arredonda para cima", "0.1", "8/8h", 9},
		{"arredondamento sem erro de ponto flutuante", "0.7", "8/8", 63},
		{"fração arredonda", "0.25", "4/4", 45},
		{"comprimidos por dia com vírgula", "1,5 comprimidos por dia", "", 45},
		{"comprimidos por dia com ponto", "0.5 cp por dia", "", 15},
		{"N gigante não estoura", "99999999999999999999 cp por dia", "", 30},
		{"N acima de int64 sem erro de Atoi", "999999999999999999 cp por dia", "", 30},
		{"N acima do limite diário cai para o padrão", "500 cp por dia", "", 30},
		{"vezes ao dia gigante", "1", "99999999999999999999 vezes ao dia", 30},
		{"dose gigante não estoura", "99999999999999999999", "8/8h", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dosage.SuggestedMonthlyQuantity(tc.dosage, tc.frequency))
		})
	}
}

func TestSuggest_RegraAplicada(t *testing.T) {
	e := dosage.Suggest("2cp por dia", "6/6h")
	assert.Equal(t, dosage.RuleTabletsPerDay, e.Rule, "regra 1 tem prioridade sobre a frequência")
	assert.Equal(t, 60, e.Quantity)

	e = dosage.Suggest("1,5", "8/8h")
	assert.Equal(t, dosage.RuleDoseFrequency, e.Rule)
	assert.Equal(t, 3, e.DosesPerDay)
	assert.Equal(t, "1.5", e.PerDose.String())
	assert.Equal(t, 135, e.Quantity)

	e = dosage.Suggest("5ml", "quando tiver dor")
	assert.Equal(t, dosage.RuleDefault, e.Rule)
	assert.Equal(t, dosage.DefaultMonthlyQuantity, e.Quantity)
}

func TestDosesPerDay_Prioridade(t *testing.T) {
	assert.Equal(t, 2, dosage.DosesPerDay("12/12h"), "12/12 não pode casar como 2x")
	assert.Equal(t, 3, dosage.DosesPerDay("8/8"))
	assert.Equal(t, 5, dosage.DosesPerDay("5 vezes ao dia"))
	assert.Equal(t, 1, dosage.DosesPerDay("Diariamente pela manhã"))
	assert.Equal(t, 0, dosage.DosesPerDay("24/24h"))
	assert.Equal(t, 0, dosage.DosesPerDay(""))
}

func TestQuantityPerDose(t *testing.T) {
	assert.Equal(t, "2.5", dosage.QuantityPerDose("2,5 ml").String())
	assert.Equal(t, "10", dosage.QuantityPerDose(" 10ml").String())
	assert.Equal(t, "1", dosage.QuantityPerDose("gotas").String())
	assert.Equal(t, "1", dosage.QuantityPerDose("").String())
}
