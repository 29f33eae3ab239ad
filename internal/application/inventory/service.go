package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/dto"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/administration"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/balance"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/dosage"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/ledger"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/replenishment"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/logger"
)

const (
	defaultSeriesDays = 30
	maxSeriesDays     = 366
)

// Deps dependências do serviço de estoque.
type Deps struct {
	TxRunner      TxRunner
	Movements     repository.MovementRepository
	Products      repository.ProductRepository
	Prescriptions repository.PrescriptionRepository
	Residents     repository.ResidentRepository
	Notifier      Notifier         // opcional
	Metrics       Metrics          // opcional
	PDF           PlanPDFGenerator // opcional
	Logger        *logger.Logger   // opcional
	Location      *time.Location   // fuso da instituição; nil = time.Local
	Now           func() time.Time // opcional (testes)
}

// Service hospeda o ledger em memória: serializa as escritas, persiste cada
// alteração numa transação e só então publica o novo estado para as leituras.
type Service struct {
	mu    sync.RWMutex
	store *ledger.Store

	tx            TxRunner
	movements     repository.MovementRepository
	products      repository.ProductRepository
	prescriptions repository.PrescriptionRepository
	residents     repository.ResidentRepository
	notifier      Notifier
	metrics       Metrics
	pdf           PlanPDFGenerator
	log           *logger.Logger
	loc           *time.Location
	now           func() time.Time
}

// NewService constrói o serviço e carrega movimentações e produtos.
func NewService(ctx context.Context, d Deps) (*Service, error) {
	if d.TxRunner == nil || d.Movements == nil || d.Products == nil || d.Prescriptions == nil || d.Residents == nil {
		return nil, fmt.Errorf("inventory service: dependências obrigatórias ausentes")
	}
	s := &Service{
		tx:            d.TxRunner,
		movements:     d.Movements,
		products:      d.Products,
		prescriptions: d.Prescriptions,
		residents:     d.Residents,
		notifier:      d.Notifier,
		metrics:       d.Metrics,
		pdf:           d.PDF,
		log:           d.Logger,
		loc:           d.Location,
		now:           d.Now,
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.metrics == nil {
		s.metrics = nopMetrics{}
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload relê movimentações e produtos da persistência (ex.: após CRUD externo do catálogo).
func (s *Service) Reload(ctx context.Context) error {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	movements, err := s.movements.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load movements: %w", err)
	}
	store := ledger.NewStore(products, movements)

	drifts := store.Verify()
	s.metrics.LedgerDrift(len(drifts))
	for _, d := range drifts {
		s.log.Warn().
			Str("product_id", d.ProductID).
			Int("counter", d.Counter).
			Int("replayed", d.Replayed).
			Msg("contador de estoque diverge do histórico")
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	s.log.Info().
		Int("products", len(products)).
		Int("movements", len(movements)).
		Msg("ledger carregado")
	return nil
}

// Today data de hoje no fuso da instituição.
func (s *Service) Today() entity.Date {
	return entity.DateOf(s.now().In(s.loc))
}

type persistFn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	rxRepo repository.PrescriptionRepository,
) error

// commit aplica mutate numa cópia do ledger, persiste e troca o estado.
// Qualquer erro deixa o estado atual intacto.
func (s *Service) commit(ctx context.Context, mutate func(next *ledger.Store) (persistFn, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.store.Clone()
	persist, err := mutate(next)
	if err != nil {
		return err
	}
	if persist != nil {
		if err := s.tx.Run(ctx, persist); err != nil {
			s.log.Error().Err(err).Msg("falha ao persistir alteração do ledger")
			return err
		}
	}
	s.store = next
	return nil
}

// saveStock grava o contador atual dos produtos informados (ignora desconhecidos e repetidos).
func saveStock(ctx context.Context, productRepo repository.ProductRepository, next *ledger.Store, productIDs ...string) error {
	seen := map[string]bool{}
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := next.Product(id)
		if !ok {
			continue
		}
		if err := productRepo.UpdateStock(ctx, id, p.CurrentStock); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) toMovement(in dto.MovementRequest) (entity.Movement, error) {
	m := entity.Movement{
		Kind:       entity.MovementKind(in.Kind),
		ProductID:  in.ProductID,
		ResidentID: in.ResidentID,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
	}
	if in.Date == "" {
		m.Date = s.Today()
	} else {
		d, err := entity.ParseDate(in.Date)
		if err != nil {
			return entity.Movement{}, domain.ErrInvalidDate
		}
		m.Date = d
	}
	return m, ledger.Validate(m)
}

func (s *Service) warnOrphan(next *ledger.Store, m entity.Movement) {
	if _, ok := next.Product(m.ProductID); !ok {
		s.log.Warn().
			Str("movement_id", m.ID).
			Str("product_id", m.ProductID).
			Msg("movimentação referencia produto fora do catálogo")
	}
}

// RecordMovement registra uma entrada ou saída.
func (s *Service) RecordMovement(ctx context.Context, in dto.MovementRequest) (*entity.Movement, error) {
	m, err := s.toMovement(in)
	if err != nil {
		return nil, err
	}
	var saved entity.Movement
	err = s.commit(ctx, func(next *ledger.Store) (persistFn, error) {
		saved, err = next.Append(m)
		if err != nil {
			return nil, err
		}
		s.warnOrphan(next, saved)
		return func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, _ repository.PrescriptionRepository) error {
			if err := movRepo.Create(ctx, &saved); err != nil {
				return err
			}
			return saveStock(ctx, productRepo, next, saved.ProductID)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.MovementRecorded(saved.Kind)
	s.log.Info().
		Str("user_id", ActorFrom(ctx).UserID).
		Str("facility_id", ActorFrom(ctx).FacilityID).
		Str("movement_id", saved.ID).
		Str("kind", string(saved.Kind)).
		Str("product_id", saved.ProductID).
		Str("resident_id", saved.ResidentID).
		Int("quantity", saved.Quantity).
		Msg("movimentação registrada")
	return &saved, nil
}

// EditMovement substitui a movimentação id pelo novo formato. ID inexistente
// não é erro: devolve applied=false.
func (s *Service) EditMovement(ctx context.Context, id string, in dto.MovementRequest) (dto.MutationResponse, error) {
	if id == "" {
		return dto.MutationResponse{}, domain.ErrInvalidInput
	}
	m, err := s.toMovement(in)
	if err != nil {
		return dto.MutationResponse{}, err
	}
	m.ID = id

	applied := false
	err = s.commit(ctx, func(next *ledger.Store) (persistFn, error) {
		old, ok := next.Movement(id)
		if !ok {
			return nil, nil
		}
		if applied, err = next.Amend(m); err != nil {
			return nil, err
		}
		s.warnOrphan(next, m)
		return func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, _ repository.PrescriptionRepository) error {
			if err := movRepo.Update(ctx, &m); err != nil {
				return err
			}
			return saveStock(ctx, productRepo, next, old.ProductID, m.ProductID)
		}, nil
	})
	if err != nil {
		return dto.MutationResponse{}, err
	}
	s.metrics.MovementEdited(applied)
	if !applied {
		s.log.Info().Str("movement_id", id).Msg("edição ignorada: movimentação inexistente")
		return dto.MutationResponse{Applied: false}, nil
	}
	s.log.Info().
		Str("user_id", ActorFrom(ctx).UserID).
		Str("facility_id", ActorFrom(ctx).FacilityID).
		Str("movement_id", id).
		Str("product_id", m.ProductID).
		Str("resident_id", m.ResidentID).
		Msg("movimentação editada")
	return dto.MutationResponse{Applied: true, Movement: &m}, nil
}

// DeleteMovement remove a movimentação e estorna seu efeito. ID inexistente: applied=false.
func (s *Service) DeleteMovement(ctx context.Context, id string) (dto.MutationResponse, error) {
	if id == "" {
		return dto.MutationResponse{}, domain.ErrInvalidInput
	}
	var old entity.Movement
	applied := false
	err := s.commit(ctx, func(next *ledger.Store) (persistFn, error) {
		var ok bool
		if old, ok = next.Movement(id); !ok {
			return nil, nil
		}
		var err error
		if applied, err = next.Retract(id); err != nil {
			return nil, err
		}
		return func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, _ repository.PrescriptionRepository) error {
			if err := movRepo.Delete(ctx, id); err != nil {
				return err
			}
			return saveStock(ctx, productRepo, next, old.ProductID)
		}, nil
	})
	if err != nil {
		return dto.MutationResponse{}, err
	}
	s.metrics.MovementDeleted(applied)
	if !applied {
		s.log.Info().Str("movement_id", id).Msg("exclusão ignorada: movimentação inexistente")
		return dto.MutationResponse{Applied: false}, nil
	}
	s.log.Info().
		Str("user_id", ActorFrom(ctx).UserID).
		Str("facility_id", ActorFrom(ctx).FacilityID).
		Str("movement_id", id).
		Str("product_id", old.ProductID).
		Msg("movimentação excluída")
	return dto.MutationResponse{Applied: true, Movement: &old}, nil
}

// ListMovements filtra o histórico; mais recentes primeiro.
func (s *Service) ListMovements(f dto.MovementFilter) ([]entity.Movement, error) {
	var from, to entity.Date
	if f.From != "" {
		d, err := entity.ParseDate(f.From)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		from = d
	}
	if f.To != "" {
		d, err := entity.ParseDate(f.To)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		to = d
	}
	kind := entity.MovementKind(strings.ToUpper(strings.TrimSpace(f.Kind)))
	if kind != "" && !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	s.mu.RLock()
	all := s.store.Movements()
	s.mu.RUnlock()

	out := make([]entity.Movement, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if f.ResidentID != "" && m.ResidentID != f.ResidentID {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if kind != "" && m.Kind != kind {
			continue
		}
		if !from.IsZero() && m.Date.Before(from) {
			continue
		}
		if !to.IsZero() && to.Before(m.Date) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

// PersonalBalance saldo pessoal do residente no produto.
func (s *Service) PersonalBalance(residentID, productID string) (dto.BalanceResponse, error) {
	if residentID == "" || productID == "" {
		return dto.BalanceResponse{}, domain.ErrInvalidInput
	}
	s.mu.RLock()
	b := balance.NewCalculator(s.store).PersonalBalance(residentID, productID)
	s.mu.RUnlock()
	return dto.BalanceResponse{
		ResidentID: residentID,
		ProductID:  productID,
		Balance:    b,
		LowStock:   b <= replenishment.LowStockThreshold,
	}, nil
}

// ResidentBalances saldos do residente em cada produto movimentado.
func (s *Service) ResidentBalances(residentID string) (dto.ResidentBalancesResponse, error) {
	if residentID == "" {
		return dto.ResidentBalancesResponse{}, domain.ErrInvalidInput
	}
	s.mu.RLock()
	list := balance.NewCalculator(s.store).ResidentBalances(residentID)
	s.mu.RUnlock()
	return dto.ResidentBalancesResponse{ResidentID: residentID, Balances: list}, nil
}

// ConsumptionSeries consumo diário do residente nos últimos days dias (hoje incluso).
// days <= 0 usa 30; o máximo é 366.
func (s *Service) ConsumptionSeries(residentID string, days int) (dto.ConsumptionSeriesResponse, error) {
	if residentID == "" {
		return dto.ConsumptionSeriesResponse{}, domain.ErrInvalidInput
	}
	if days <= 0 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}
	today := s.Today()
	s.mu.RLock()
	series := balance.NewCalculator(s.store).DailyConsumptionSeries(residentID, days, today)
	s.mu.RUnlock()

	total := 0
	for _, d := range series {
		total += d.Quantity
	}
	return dto.ConsumptionSeriesResponse{ResidentID: residentID, Days: days, Total: total, Series: series}, nil
}

// ProductStock contador geral do produto comparado ao replay do histórico.
func (s *Service) ProductStock(productID string) (dto.ProductStockResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.store.Product(productID)
	if !ok {
		return dto.ProductStockResponse{}, domain.ErrNotFound
	}
	replayed := balance.NewCalculator(s.store).FacilityTotal(productID)
	return dto.ProductStockResponse{
		ProductID:    p.ID,
		Name:         p.Name,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Replayed:     replayed,
		Drift:        replayed - p.CurrentStock,
		BelowMinimum: p.BelowMinimum(),
	}, nil
}

// SuggestedMonthlyQuantity estimativa mensal a partir de dosagem e frequência.
func (s *Service) SuggestedMonthlyQuantity(dosageText, frequency string) dosage.Estimate {
	return dosage.Suggest(dosageText, frequency)
}

// BuildReplenishmentPlan monta o plano de reposição com as prescrições ativas.
func (s *Service) BuildReplenishmentPlan(ctx context.Context, overrides []dto.OverrideDTO) (replenishment.Plan, error) {
	ov := make(replenishment.Overrides, len(overrides))
	for _, o := range overrides {
		if o.ResidentID == "" || o.ProductID == "" {
			return replenishment.Plan{}, domain.ErrInvalidInput
		}
		if o.Quantity <= 0 {
			return replenishment.Plan{}, domain.ErrInvalidQuantity
		}
		ov[replenishment.Key{ResidentID: o.ResidentID, ProductID: o.ProductID}] = o.Quantity
	}

	prescriptions, err := s.prescriptions.ListActive(ctx)
	if err != nil {
		return replenishment.Plan{}, fmt.Errorf("list prescriptions: %w", err)
	}
	residents, err := s.residents.ListActive(ctx)
	if err != nil {
		return replenishment.Plan{}, fmt.Errorf("list residents: %w", err)
	}

	s.mu.RLock()
	snapshot := s.store.Clone()
	s.mu.RUnlock()

	plan := replenishment.Build(replenishment.Input{
		Prescriptions: prescriptions,
		Products:      snapshot.Products(),
		Residents:     residents,
		Balances:      balance.NewCalculator(snapshot),
		Overrides:     ov,
	})
	s.log.Debug().
		Int("by_product", len(plan.ByProduct)).
		Int("by_resident", len(plan.ByResident)).
		Int("facility", len(plan.Facility)).
		Msg("plano de reposição gerado")
	return plan, nil
}

// ReplenishmentPlanPDF plano de reposição em PDF.
func (s *Service) ReplenishmentPlanPDF(ctx context.Context, overrides []dto.OverrideDTO) ([]byte, error) {
	if s.pdf == nil {
		return nil, fmt.Errorf("gerador de PDF não configurado")
	}
	plan, err := s.BuildReplenishmentPlan(ctx, overrides)
	if err != nil {
		return nil, err
	}
	return s.pdf.GeneratePlanPDF(ctx, plan, s.Today())
}

// AdministerNow administra uma dose da prescrição agora. Para tratamentos,
// encerra a prescrição quando o saldo se esgota e emite o aviso.
func (s *Service) AdministerNow(ctx context.Context, prescriptionID string) (administration.Result, error) {
	if prescriptionID == "" {
		return administration.Result{}, domain.ErrInvalidInput
	}

	// A prescrição é lida sob o lock de escrita: duas administrações
	// concorrentes não podem ver o mesmo estado ACTIVE.
	var (
		rx  *entity.Prescription
		res administration.Result
	)
	err := s.commit(ctx, func(next *ledger.Store) (persistFn, error) {
		var err error
		rx, err = s.prescriptions.GetByID(ctx, prescriptionID)
		if err != nil {
			return nil, fmt.Errorf("get prescription: %w", err)
		}
		if rx == nil {
			return nil, domain.ErrNotFound
		}
		engine := administration.NewEngine(next, s.loc).WithClock(s.now)
		res, err = engine.AdministerNow(rx)
		if err != nil {
			return nil, err
		}
		s.warnOrphan(next, res.Movement)
		return func(movRepo repository.MovementRepository, productRepo repository.ProductRepository, rxRepo repository.PrescriptionRepository) error {
			// outra instância pode ter encerrado a prescrição
			locked, err := rxRepo.GetForUpdate(ctx, rx.ID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if !locked.Active {
				return domain.ErrPrescriptionClosed
			}
			if err := movRepo.Create(ctx, &res.Movement); err != nil {
				return err
			}
			if err := saveStock(ctx, productRepo, next, res.Movement.ProductID); err != nil {
				return err
			}
			if res.TreatmentCompleted {
				return rxRepo.SetActive(ctx, rx.ID, false)
			}
			return nil
		}, nil
	})
	if err != nil {
		return administration.Result{}, err
	}

	s.metrics.DoseAdministered(res.TreatmentCompleted)
	s.log.Info().
		Str("user_id", ActorFrom(ctx).UserID).
		Str("facility_id", ActorFrom(ctx).FacilityID).
		Str("prescription_id", rx.ID).
		Str("movement_id", res.Movement.ID).
		Str("resident_id", rx.ResidentID).
		Str("product_id", rx.ProductID).
		Int("balance", res.Balance).
		Bool("treatment_completed", res.TreatmentCompleted).
		Msg("dose administrada")

	if res.TreatmentCompleted {
		event := TreatmentCompletedEvent{
			EventID:        uuid.New().String(),
			PrescriptionID: rx.ID,
			ResidentID:     rx.ResidentID,
			ProductID:      rx.ProductID,
			MovementID:     res.Movement.ID,
			Date:           res.Movement.Date,
			Balance:        res.Balance,
			AdministeredBy: ActorFrom(ctx).UserID,
			OccurredAt:     s.now(),
		}
		if err := s.notifier.TreatmentCompleted(ctx, event); err != nil {
			s.log.Error().Err(err).Str("prescription_id", rx.ID).Msg("falha ao publicar fim de tratamento")
		}
	}
	return res, nil
}

// AdministeredToday indica se a prescrição já tem administração registrada hoje.
func (s *Service) AdministeredToday(ctx context.Context, prescriptionID string) (bool, error) {
	rx, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return false, fmt.Errorf("get prescription: %w", err)
	}
	if rx == nil {
		return false, domain.ErrNotFound
	}
	s.mu.RLock()
	movs := s.store.Movements()
	s.mu.RUnlock()
	return administration.AdministeredOn(movs, *rx, s.Today()), nil
}

// VerifyLedger produtos cujo contador diverge do replay do histórico.
func (s *Service) VerifyLedger() []ledger.Drift {
	s.mu.RLock()
	drifts := s.store.Verify()
	s.mu.RUnlock()
	s.metrics.LedgerDrift(len(drifts))
	return drifts
}

// ReconcileLedger corrige e persiste os contadores divergentes.
func (s *Service) ReconcileLedger(ctx context.Context) ([]ledger.Drift, error) {
	var fixed []ledger.Drift
	err := s.commit(ctx, func(next *ledger.Store) (persistFn, error) {
		fixed = next.Reconcile()
		if len(fixed) == 0 {
			return nil, nil
		}
		return func(_ repository.MovementRepository, productRepo repository.ProductRepository, _ repository.PrescriptionRepository) error {
			ids := make([]string, 0, len(fixed))
			for _, d := range fixed {
				ids = append(ids, d.ProductID)
			}
			return saveStock(ctx, productRepo, next, ids...)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	for _, d := range fixed {
		s.log.Warn().
			Str("product_id", d.ProductID).
			Int("from", d.Counter).
			Int("to", d.Replayed).
			Msg("contador de estoque reconciliado")
	}
	s.metrics.LedgerDrift(0)
	return fixed, nil
}
