package wallet

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must not be negative")
)

// Repo persists the single wallet balance.
type Repo interface {
	Balance(ctx context.Context) (int, error)
	SetBalance(ctx context.Context, money int) error
}

// MemoryRepo is an in-memory wallet repository.
type MemoryRepo struct {
	mu    sync.RWMutex
	money int
}

func NewMemoryRepo(start int) *MemoryRepo {
	if start < 0 {
		start = 0
	}
	return &MemoryRepo{money: start}
}

func (r *MemoryRepo) Balance(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.money, nil
}

func (r *MemoryRepo) SetBalance(ctx context.Context, money int) error {
	if money < 0 {
		money = 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.money = money
	return nil
}
