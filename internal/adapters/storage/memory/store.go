package memory

import (
	"context"
	"sync"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/pets"
	"pet-daycare/internal/domain/schedules"
)

// Store es la base en memoria compartida por todos los repos (solo para dev/tests).
// WithinTx serializa contra el resto de operaciones y restaura el snapshot si fn falla.
type Store struct {
	mu   sync.RWMutex
	data tables
}

type tables struct {
	customers map[int64]customers.Customer
	pets      map[int64]pets.Pet
	employees map[int64]employees.Employee
	schedules map[int64]schedules.Schedule

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{data: tables{
		customers: make(map[int64]customers.Customer),
		pets:      make(map[int64]pets.Pet),
		employees: make(map[int64]employees.Employee),
		schedules: make(map[int64]schedules.Schedule),
		seq:       make(map[string]int64),
	}}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// WithinTx implementa tx.Manager. Las llamadas anidadas reutilizan la transacción externa.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) read(ctx context.Context, fn func(t *tables) error) error {
	if !s.inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn(&s.data)
}

func (s *Store) write(ctx context.Context, fn func(t *tables) error) error {
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(&s.data)
}

func (t *tables) nextID(table string) int64 {
	t.seq[table]++
	return t.seq[table]
}

func (t tables) clone() tables {
	out := tables{
		customers: make(map[int64]customers.Customer, len(t.customers)),
		pets:      make(map[int64]pets.Pet, len(t.pets)),
		employees: make(map[int64]employees.Employee, len(t.employees)),
		schedules: make(map[int64]schedules.Schedule, len(t.schedules)),
		seq:       make(map[string]int64, len(t.seq)),
	}
	for k, v := range t.customers {
		out.customers[k] = v
	}
	for k, v := range t.pets {
		out.pets[k] = v
	}
	// Los slices se copian al entrar/salir de los repos, así que compartirlos acá es seguro.
	for k, v := range t.employees {
		out.employees[k] = v
	}
	for k, v := range t.schedules {
		out.schedules[k] = v
	}
	for k, v := range t.seq {
		out.seq[k] = v
	}
	return out
}

func copyIDs(in []int64) []int64 {
	if in == nil {
		return nil
	}
	return append([]int64{}, in...)
}
