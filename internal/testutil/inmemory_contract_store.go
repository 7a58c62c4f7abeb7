package testutil

import (
	"context"
	"sort"

	"github.com/petshield/petshield/internal/domain/contract"
	ierr "github.com/petshield/petshield/internal/errors"
)

// InMemoryContractStore implements contract.Repository
type InMemoryContractStore struct {
	*InMemoryStore[*contract.Contract]
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{
		InMemoryStore: NewInMemoryStore[*contract.Contract](),
	}
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return ierr.NewError("contract is nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryContractStore) Get(ctx context.Context, id string) (*contract.Contract, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryContractStore) Update(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return ierr.NewError("contract is nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryContractStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryContractStore) List(ctx context.Context) ([]*contract.Contract, error) {
	contracts := s.InMemoryStore.List(ctx)
	sort.Slice(contracts, func(i, j int) bool { return contracts[i].ContractNumber < contracts[j].ContractNumber })
	return contracts, nil
}
