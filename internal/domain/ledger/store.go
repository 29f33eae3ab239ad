// Package ledger mantém o histórico de movimentações e o contador geral de
// estoque de cada produto (Product.CurrentStock).
//
// O Store é o único que altera movimentações e contadores. Não usa locks:
// quem hospeda o Store serializa as escritas (um escritor por vez).
package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
)

// Store coleção ordenada de movimentações + catálogo de contadores.
type Store struct {
	movements []entity.Movement
	index     map[string]int // movement id -> posição em movements
	products  map[string]*entity.Product
	newID     func() string
}

// Option configura o Store.
type Option func(*Store)

// WithIDGenerator substitui o gerador de IDs (padrão: UUID v4).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore carrega o estado persistido tal como está: os contadores dos produtos
// não são recalculados aqui (ver Replay/Reconcile).
func NewStore(products []entity.Product, movements []entity.Movement, opts ...Option) *Store {
	s := &Store{
		movements: make([]entity.Movement, 0, len(movements)),
		index:     make(map[string]int, len(movements)),
		products:  make(map[string]*entity.Product, len(products)),
		newID:     func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(s)
	}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	for _, m := range movements {
		if _, dup := s.index[m.ID]; dup {
			continue
		}
		s.index[m.ID] = len(s.movements)
		s.movements = append(s.movements, m)
	}
	return s
}

// Validate regras de fronteira de uma movimentação (sem tocar no estado).
func Validate(m entity.Movement) error {
	if !m.Kind.Valid() {
		return domain.ErrInvalidKind
	}
	if m.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if !m.Date.Valid() {
		return domain.ErrInvalidDate
	}
	if m.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Append valida, atribui ID se ausente, guarda a movimentação e aplica seu efeito
// no contador do produto. Produto desconhecido: a movimentação é guardada sem
// contador para atualizar. Estoque negativo é permitido.
func (s *Store) Append(m entity.Movement) (entity.Movement, error) {
	if err := Validate(m); err != nil {
		return entity.Movement{}, err
	}
	if m.ID == "" {
		m.ID = s.newID()
	}
	if _, exists := s.index[m.ID]; exists {
		return entity.Movement{}, domain.ErrDuplicate
	}
	s.index[m.ID] = len(s.movements)
	s.movements = append(s.movements, m)
	s.apply(m.ProductID, m.SignedQuantity())
	return m, nil
}

// Amend substitui a movimentação com o mesmo ID. Se não existe, não faz nada
// (applied=false). Estorna o efeito antigo e aplica o novo num único passo:
// a validação acontece antes de qualquer alteração.
func (s *Store) Amend(m entity.Movement) (applied bool, err error) {
	if m.ID == "" {
		return false, domain.ErrInvalidInput
	}
	if err := Validate(m); err != nil {
		return false, err
	}
	pos, ok := s.index[m.ID]
	if !ok {
		return false, nil
	}
	old := s.movements[pos]

	deltas := map[string]int{}
	deltas[old.ProductID] -= old.SignedQuantity()
	deltas[m.ProductID] += m.SignedQuantity()

	s.movements[pos] = m
	for productID, delta := range deltas {
		s.apply(productID, delta)
	}
	return true, nil
}

// Retract remove a movimentação e estorna seu efeito. ID inexistente: no-op.
func (s *Store) Retract(id string) (applied bool, err error) {
	if id == "" {
		return false, domain.ErrInvalidInput
	}
	pos, ok := s.index[id]
	if !ok {
		return false, nil
	}
	old := s.movements[pos]
	s.movements = append(s.movements[:pos], s.movements[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.movements); i++ {
		s.index[s.movements[i].ID] = i
	}
	s.apply(old.ProductID, -old.SignedQuantity())
	return true, nil
}

func (s *Store) apply(productID string, delta int) {
	if delta == 0 {
		return
	}
	if p, ok := s.products[productID]; ok {
		p.CurrentStock += delta
	}
}

// Movements cópia da coleção, na ordem de inserção.
func (s *Store) Movements() []entity.Movement {
	out := make([]entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// Movement busca uma movimentação por ID.
func (s *Store) Movement(id string) (entity.Movement, bool) {
	pos, ok := s.index[id]
	if !ok {
		return entity.Movement{}, false
	}
	return s.movements[pos], true
}

// Len quantidade de movimentações.
func (s *Store) Len() int { return len(s.movements) }

// Product busca um produto (cópia) por ID.
func (s *Store) Product(id string) (entity.Product, bool) {
	p, ok := s.products[id]
	if !ok {
		return entity.Product{}, false
	}
	return *p, true
}

// Products cópia do catálogo ordenada por ID.
func (s *Store) Products() []entity.Product {
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutProduct sincroniza o catálogo. Para um produto já conhecido só os dados
// cadastrais mudam: o contador continua sob controle do ledger.
func (s *Store) PutProduct(p entity.Product) error {
	if p.ID == "" {
		return domain.ErrInvalidInput
	}
	if cur, ok := s.products[p.ID]; ok {
		p.CurrentStock = cur.CurrentStock
	}
	s.products[p.ID] = &p
	return nil
}

// RemoveProduct tira o produto do catálogo; as movimentações ficam órfãs.
func (s *Store) RemoveProduct(id string) bool {
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

// Clone cópia profunda, usada para aplicar uma operação e só publicar o
// resultado depois de persistido.
func (s *Store) Clone() *Store {
	c := &Store{
		movements: make([]entity.Movement, len(s.movements)),
		index:     make(map[string]int, len(s.index)),
		products:  make(map[string]*entity.Product, len(s.products)),
		newID:     s.newID,
	}
	copy(c.movements, s.movements)
	for id, pos := range s.index {
		c.index[id] = pos
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	return c
}
