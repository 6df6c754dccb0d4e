package inventory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

var errStorage = errors.New("storage caído")

// memStore almacenamiento en memoria con transacciones por snapshot.
// Run serializa las transacciones con un mutex (equivalente al FOR UPDATE sobre el producto).
type memStore struct {
	mu       sync.Mutex
	products map[string]entity.Product
	lots     map[string]entity.Lot
	ledger   []entity.LedgerEntry

	failLedgerCreate bool
	failLotDelete    bool
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]entity.Product{},
		lots:     map[string]entity.Lot{},
	}
}

func (s *memStore) addProduct(p entity.Product) {
	s.products[p.ID] = p
}

func (s *memStore) addLot(l entity.Lot) {
	s.lots[l.ID] = l
}

func (s *memStore) stock(productID string) int {
	total := 0
	for _, l := range s.lots {
		if l.ProductID == productID {
			total += l.Quantity
		}
	}
	return total
}

// Run implementa TxRunner: si fn falla, restaura el estado previo.
func (s *memStore) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	ledgerRepo repository.LedgerEntryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	lots := make(map[string]entity.Lot, len(s.lots))
	for k, v := range s.lots {
		lots[k] = v
	}
	ledger := append([]entity.LedgerEntry(nil), s.ledger...)

	if err := fn(memProducts{s}, memLots{s}, memLedger{s}); err != nil {
		s.products, s.lots, s.ledger = products, lots, ledger
		return err
	}
	return nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, nil
}

func (r memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memProducts) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type memLots struct{ s *memStore }

func (r memLots) Create(_ context.Context, l *entity.Lot) error {
	r.s.lots[l.ID] = *l
	return nil
}

func (r memLots) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r memLots) ListByProduct(_ context.Context, productID string) ([]entity.Lot, error) {
	var out []entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresOn.Before(out[j].ExpiresOn) })
	return out, nil
}

func (r memLots) ListByProductForUpdate(ctx context.Context, productID string) ([]entity.Lot, error) {
	return r.ListByProduct(ctx, productID)
}

func (r memLots) ListAll(_ context.Context) ([]entity.Lot, error) {
	out := make([]entity.Lot, 0, len(r.s.lots))
	for _, l := range r.s.lots {
		out = append(out, l)
	}
	return out, nil
}

func (r memLots) SumByProduct(_ context.Context, productID string) (int, error) {
	return r.s.stock(productID), nil
}

func (r memLots) UpdateQuantity(_ context.Context, id string, quantity int) error {
	l, ok := r.s.lots[id]
	if !ok {
		return errors.New("lote no existe")
	}
	l.Quantity = quantity
	r.s.lots[id] = l
	return nil
}

func (r memLots) Delete(_ context.Context, id string) error {
	if r.s.failLotDelete {
		return errStorage
	}
	delete(r.s.lots, id)
	return nil
}

type memLedger struct{ s *memStore }

func (r memLedger) Create(_ context.Context, e *entity.LedgerEntry) error {
	if r.s.failLedgerCreate {
		return errStorage
	}
	r.s.ledger = append(r.s.ledger, *e)
	return nil
}

func (r memLedger) GetByID(_ context.Context, id string) (*entity.LedgerEntry, error) {
	for _, e := range r.s.ledger {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r memLedger) Update(context.Context, *entity.LedgerEntry) error { return nil }

func (r memLedger) Delete(context.Context, string) error { return nil }

func (r memLedger) List(context.Context, repository.LedgerFilter) ([]entity.LedgerEntryView, int, error) {
	return nil, 0, nil
}

func (r memLedger) DailyTotals(context.Context, repository.LedgerFilter) ([]repository.PeriodTotal, error) {
	return nil, nil
}

type recordingNotifier struct {
	calls int
	last  dto.ExpiryAlertDTO
	err   error
}

func (n *recordingNotifier) NotifyExpiry(_ context.Context, alert dto.ExpiryAlertDTO) error {
	n.calls++
	n.last = alert
	return n.err
}
