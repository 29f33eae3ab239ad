// Package administration registra a administração de uma dose e encerra
// prescrições de tratamento quando o saldo pessoal se esgota.
package administration

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/balance"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// NotePrefix marca as saídas geradas por administração diária.
const NotePrefix = "Administração Diária"

var leadingDigitsRe = regexp.MustCompile(`^\s*(\d+)`)

// Ledger o que o motor precisa do ledger (ex.: ledger.Store).
type Ledger interface {
	Append(m entity.Movement) (entity.Movement, error)
	Movements() []entity.Movement
}

// Result efeito de uma administração.
type Result struct {
	Movement           entity.Movement     `json:"movement"`
	Balance            int                 `json:"balance"`
	TreatmentCompleted bool                `json:"treatment_completed"`
	Prescription       entity.Prescription `json:"prescription"`
}

// Engine motor de administração.
type Engine struct {
	ledger Ledger
	now    func() time.Time
	loc    *time.Location
}

// NewEngine constrói o motor. loc define o "hoje" (nil = time.Local).
func NewEngine(ledger Ledger, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{ledger: ledger, now: time.Now, loc: loc}
}

// WithClock substitui o relógio (testes).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// DoseQuantity dígitos iniciais da dosagem; falha ou <= 0 resulta em 1.
func DoseQuantity(dosage string) int {
	m := leadingDigitsRe.FindStringSubmatch(dosage)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// AdministerNow lança a saída de uma dose para hoje. Se a prescrição é de
// tratamento e o saldo pessoal ficou <= 0, a prescrição passa a CLOSED
// (rx.Active=false) e Result.TreatmentCompleted indica o aviso ao chamador.
// Chamar duas vezes registra duas administrações.
func (e *Engine) AdministerNow(rx *entity.Prescription) (Result, error) {
	if rx == nil || rx.ResidentID == "" || rx.ProductID == "" {
		return Result{}, domain.ErrInvalidInput
	}
	if !rx.Active {
		return Result{}, domain.ErrPrescriptionClosed
	}

	mov, err := e.ledger.Append(entity.Movement{
		Date:       entity.DateOf(e.now().In(e.loc)),
		Kind:       entity.MovementOUT,
		ProductID:  rx.ProductID,
		ResidentID: rx.ResidentID,
		Quantity:   DoseQuantity(rx.Dosage),
		Notes:      Note(rx.Dosage),
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Movement: mov}
	res.Balance = balance.PersonalBalance(e.ledger.Movements(), rx.ResidentID, rx.ProductID)
	if rx.IsTreatment && res.Balance <= 0 {
		rx.Active = false
		res.TreatmentCompleted = true
	}
	res.Prescription = *rx
	return res, nil
}

// Note texto da movimentação de administração.
func Note(dosage string) string {
	dosage = strings.TrimSpace(dosage)
	if dosage == "" {
		return NotePrefix
	}
	return NotePrefix + ": " + dosage
}

// AdministeredOn indica se já existe saída de administração do par na data.
func AdministeredOn(movements []entity.Movement, rx entity.Prescription, date entity.Date) bool {
	for _, m := range movements {
		if m.Kind == entity.MovementOUT && m.Date == date &&
			m.ResidentID == rx.ResidentID && m.ProductID == rx.ProductID &&
			strings.HasPrefix(m.Notes, NotePrefix) {
			return true
		}
	}
	return false
}
