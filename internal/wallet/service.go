package wallet

import (
	"context"
	"fmt"

	"chorepet/internal/event"
	"chorepet/internal/reward"
)

// Service exposes wallet reads and explicit spends. Reward/penalty mutations
// from task completion go through the task service instead.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Balance returns the current coin balance.
func (s *Service) Balance(ctx context.Context) (int, error) {
	money, err := s.repo.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}
	return money, nil
}

// Spend removes amount coins from the wallet. Fails with
// ErrInsufficientFunds when amount exceeds the balance; the balance is
// untouched on failure. Returns the new balance and the events to broadcast.
func (s *Service) Spend(ctx context.Context, amount int) (int, []event.Event, error) {
	if amount < 0 {
		return 0, nil, ErrInvalidAmount
	}
	money, err := s.repo.Balance(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("wallet balance: %w", err)
	}
	if amount > money {
		return 0, nil, ErrInsufficientFunds
	}

	// clamp is redundant behind the guard above, kept as a floor.
	next := reward.Apply(money, -amount)
	if err := s.repo.SetBalance(ctx, next); err != nil {
		return 0, nil, fmt.Errorf("wallet set balance: %w", err)
	}
	return next, []event.Event{event.MoneyUpdated(next)}, nil
}
