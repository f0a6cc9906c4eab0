package memory

import (
	"context"
	"sort"
	"sync"

	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

// CustomerStore keeps customers in process memory when no database is configured.
type CustomerStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]customeruc.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		nextID: 1,
		rows:   map[int64]customeruc.Customer{},
	}
}

func (s *CustomerStore) Insert(_ context.Context, c customeruc.Customer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	c.ID = &id
	s.rows[id] = c
	return id, nil
}

func (s *CustomerStore) Update(_ context.Context, c customeruc.Customer) error {
	if c.ID == nil {
		return &customeruc.ValidationError{Kind: customeruc.MissingIdentifier}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[*c.ID]; !ok {
		return customeruc.ErrNotFound
	}
	id := *c.ID
	c.ID = &id
	s.rows[id] = c
	return nil
}

func (s *CustomerStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
	return nil
}

func (s *CustomerStore) FindByID(_ context.Context, id int64) (*customeruc.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.rows[id]
	if !ok {
		return nil, customeruc.ErrNotFound
	}
	return copyOf(c), nil
}

func (s *CustomerStore) FindBy(_ context.Context, f customeruc.Filter) ([]customeruc.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]customeruc.Customer, 0)
	for _, c := range s.rows {
		if f.Match(c) {
			out = append(out, *copyOf(c))
		}
	}
	sortByID(out)
	return out, nil
}

func (s *CustomerStore) All(_ context.Context) ([]customeruc.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]customeruc.Customer, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, *copyOf(c))
	}
	sortByID(out)
	return out, nil
}

// copyOf detaches the id pointer so callers never alias stored state.
func copyOf(c customeruc.Customer) *customeruc.Customer {
	if c.ID != nil {
		id := *c.ID
		c.ID = &id
	}
	return &c
}

func sortByID(cs []customeruc.Customer) {
	sort.Slice(cs, func(i, j int) bool {
		return *cs[i].ID < *cs[j].ID
	})
}
