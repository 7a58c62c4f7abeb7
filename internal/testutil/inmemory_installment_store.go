package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/petshield/petshield/internal/domain/installment"
	ierr "github.com/petshield/petshield/internal/errors"
)

// InMemoryInstallmentStore implements installment.Repository
type InMemoryInstallmentStore struct {
	*InMemoryStore[*installment.Installment]
	mu sync.RWMutex
	// updateErr, when set, makes UpdateDueDate fail for matching installment
	// IDs. Used to exercise the auditor's best-effort batch behavior.
	updateErr map[string]error
	// createErr, when set, makes every Create fail. Used to exercise
	// compensating rollback paths.
	createErr error
	// UpdateCount tracks how many due-date writes landed.
	UpdateCount int
}

func NewInMemoryInstallmentStore() *InMemoryInstallmentStore {
	return &InMemoryInstallmentStore{
		InMemoryStore: NewInMemoryStore[*installment.Installment](),
		updateErr:     make(map[string]error),
	}
}

// FailUpdateDueDate makes subsequent UpdateDueDate calls for id return err.
func (s *InMemoryInstallmentStore) FailUpdateDueDate(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateErr[id] = err
}

// FailCreate makes subsequent Create calls return err.
func (s *InMemoryInstallmentStore) FailCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

func (s *InMemoryInstallmentStore) Create(ctx context.Context, i *installment.Installment) error {
	s.mu.RLock()
	createErr := s.createErr
	s.mu.RUnlock()
	if createErr != nil {
		return createErr
	}
	if i == nil {
		return ierr.NewError("installment is nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, i.ID, i)
}

func (s *InMemoryInstallmentStore) Get(ctx context.Context, id string) (*installment.Installment, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryInstallmentStore) ListByContract(ctx context.Context, contractID string) ([]*installment.Installment, error) {
	var results []*installment.Installment
	for _, i := range s.InMemoryStore.List(ctx) {
		if i.ContractID == contractID {
			results = append(results, i)
		}
	}
	sort.Slice(results, func(a, b int) bool {
		return results[a].InstallmentNumber < results[b].InstallmentNumber
	})
	return results, nil
}

func (s *InMemoryInstallmentStore) UpdateDueDate(ctx context.Context, id string, dueDate time.Time) error {
	s.mu.Lock()
	if err, ok := s.updateErr[id]; ok {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	i, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}
	i.DueDate = dueDate
	if err := s.InMemoryStore.Update(ctx, id, i); err != nil {
		return err
	}

	s.mu.Lock()
	s.UpdateCount++
	s.mu.Unlock()
	return nil
}
