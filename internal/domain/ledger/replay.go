package ledger

import "sort"

// Drift diferença entre o contador incremental e o replay completo.
type Drift struct {
	ProductID string `json:"product_id"`
	Counter   int    `json:"counter"`
	Replayed  int    `json:"replayed"`
}

// Delta Replayed - Counter.
func (d Drift) Delta() int { return d.Replayed - d.Counter }

// Replay soma assinada das movimentações por produto do catálogo.
// Produtos sem movimentação aparecem com 0; movimentações órfãs são ignoradas.
func (s *Store) Replay() map[string]int {
	totals := make(map[string]int, len(s.products))
	for id := range s.products {
		totals[id] = 0
	}
	for _, m := range s.movements {
		if _, ok := totals[m.ProductID]; ok {
			totals[m.ProductID] += m.SignedQuantity()
		}
	}
	return totals
}

// Verify lista os produtos cujo contador não bate com o replay, ordenados por ID.
func (s *Store) Verify() []Drift {
	var drifts []Drift
	for id, replayed := range s.Replay() {
		if counter := s.products[id].CurrentStock; counter != replayed {
			drifts = append(drifts, Drift{ProductID: id, Counter: counter, Replayed: replayed})
		}
	}
	sort.Slice(drifts, func(i, j int) bool { return drifts[i].ProductID < drifts[j].ProductID })
	return drifts
}

// Reconcile corrige os contadores pelo replay e devolve o que foi corrigido.
func (s *Store) Reconcile() []Drift {
	drifts := s.Verify()
	for _, d := range drifts {
		s.products[d.ProductID].CurrentStock = d.Replayed
	}
	return drifts
}
