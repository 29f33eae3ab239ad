// Package dosage estima a quantidade mensal a repor a partir dos campos
// livres de dosagem e frequência de uma prescrição (abreviações clínicas em português).
//
// As regras são avaliadas numa ordem fixa e o parser nunca falha: texto não
// reconhecido resolve para DefaultMonthlyQuantity.
package dosage

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DaysPerMonth horizonte de reposição.
	DaysPerMonth = 30
	// DefaultMonthlyQuantity quando nenhuma regra reconhece o texto.
	DefaultMonthlyQuantity = 30
	// MaxDailyUnits limite de unidades ou doses por dia aceito nas regras;
	// acima disso o texto é tratado como não reconhecido.
	MaxDailyUnits = 100
	// MaxMonthlyQuantity teto da estimativa; acima dele vale o padrão.
	MaxMonthlyQuantity = 100000
)

// Rule identifica qual regra produziu a estimativa.
type Rule string

const (
	RuleTabletsPerDay Rule = "comprimidos_por_dia"
	RuleDoseFrequency Rule = "dose_frequencia"
	RuleDefault       Rule = "padrao"
)

// Estimate resultado detalhado do parser.
type Estimate struct {
	Quantity    int             `json:"quantity"`
	Rule        Rule            `json:"rule"`
	PerDose     decimal.Decimal `json:"per_dose"`
	DosesPerDay int             `json:"doses_per_day"`
}

var (
	tabletsPerDayRe = regexp.MustCompile(`(?:^|[^\d.,])(\d+(?:[.,]\d+)?)\s*(?:comprimidos?|cps?)\s*por\s*dia`)
	leadingNumberRe = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)`)
)

type frequencyMatcher struct {
	re    *regexp.Regexp
	doses func(match []string) int
}

func fixed(n int) func([]string) int {
	return func([]string) int { return n }
}

// frequencyMatchers em ordem de prioridade; o primeiro que casar decide.
var frequencyMatchers = []frequencyMatcher{
	{regexp.MustCompile(`\b12\s*(?:em|/)\s*12`), fixed(2)},
	{regexp.MustCompile(`\b8\s*(?:em|/)\s*8`), fixed(3)},
	{regexp.MustCompile(`\b6\s*(?:em|/)\s*6`), fixed(4)},
	{regexp.MustCompile(`\b4\s*(?:em|/)\s*4`), fixed(6)},
	{regexp.MustCompile(`(?:^|[^\d.,])(\d+)\s*(?:vezes|x)\s*(?:ao|a)\s*dia`), func(m []string) int {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > MaxDailyUnits {
			return 0
		}
		return n
	}},
	{regexp.MustCompile(`uma vez|\b1x|diariamente`), fixed(1)},
	{regexp.MustCompile(`duas vezes|\b2x`), fixed(2)},
	{regexp.MustCompile(`tres vezes|\b3x`), fixed(3)},
}

// SuggestedMonthlyQuantity quantidade mensal sugerida para reposição.
func SuggestedMonthlyQuantity(dosage, frequency string) int {
	return Suggest(dosage, frequency).Quantity
}

// Suggest aplica as regras na ordem:
//  1. "<N> comprimido(s)/cp(s) por dia" em dosagem+frequência -> ceil(N*30)
//  2. quantidade por dose = número inicial da dosagem (padrão 1)
//  3. doses por dia pela frequência (0 se nada casar)
//  4. doses > 0 -> ceil(dose * doses * 30)
//  5. senão -> 30
//
// N fora de (0, MaxDailyUnits] ignora a regra 1; um total acima de
// MaxMonthlyQuantity ignora a regra 4.
func Suggest(dosage, frequency string) Estimate {
	d := fold(dosage)
	f := fold(frequency)

	if m := tabletsPerDayRe.FindStringSubmatch(d + " " + f); m != nil {
		n, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "."))
		if err == nil && n.IsPositive() && n.LessThanOrEqual(decimal.NewFromInt(MaxDailyUnits)) {
			return Estimate{
				Quantity:    int(n.Mul(decimal.NewFromInt(DaysPerMonth)).Ceil().IntPart()),
				Rule:        RuleTabletsPerDay,
				PerDose:     n,
				DosesPerDay: 1,
			}
		}
	}

	perDose := QuantityPerDose(d)
	doses := DosesPerDay(f)
	if doses > 0 {
		total := perDose.Mul(decimal.NewFromInt(int64(doses))).Mul(decimal.NewFromInt(DaysPerMonth)).Ceil()
		if total.LessThanOrEqual(decimal.NewFromInt(MaxMonthlyQuantity)) {
			return Estimate{
				Quantity:    int(total.IntPart()),
				Rule:        RuleDoseFrequency,
				PerDose:     perDose,
				DosesPerDay: doses,
			}
		}
	}
	return Estimate{
		Quantity: DefaultMonthlyQuantity,
		Rule:     RuleDefault,
		PerDose:  perDose,
	}
}

// QuantityPerDose número inicial da dosagem, com vírgula ou ponto decimal.
// Ausente, inválido ou não positivo resolve para 1.
func QuantityPerDose(dosage string) decimal.Decimal {
	one := decimal.NewFromInt(1)
	m := leadingNumberRe.FindStringSubmatch(dosage)
	if m == nil {
		return one
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "."))
	if err != nil || !v.IsPositive() {
		return one
	}
	return v
}

// DosesPerDay doses diárias a partir da frequência; 0 quando não reconhecida.
func DosesPerDay(frequency string) int {
	f := fold(frequency)
	for _, fm := range frequencyMatchers {
		if m := fm.re.FindStringSubmatch(f); m != nil {
			return fm.doses(m)
		}
	}
	return 0
}

// fold minúsculas e sem acentos ("Três" -> "tres").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
