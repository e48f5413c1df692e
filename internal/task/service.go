package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chorepet/internal/event"
	"chorepet/internal/model"
	"chorepet/internal/reward"
	"chorepet/internal/wallet"
)

// Service orchestrates the task store, the wallet and the reward amounts.
// Mutating methods return the events to broadcast; nothing is emitted until
// the mutation has committed, so a failed call produces no events.
type Service struct {
	store   Store
	rewards reward.Amounts
}

func NewService(store Store, rewards reward.Amounts) *Service {
	return &Service{store: store, rewards: rewards}
}

func (s *Service) ListAll(ctx context.Context) ([]model.Task, error) {
	return s.store.Tasks().List(ctx, ListFilter{})
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]model.Task, error) {
	return s.store.Tasks().List(ctx, ListFilter{Date: date})
}

func (s *Service) ListOverdue(ctx context.Context, today string) ([]model.Task, error) {
	return s.store.Tasks().List(ctx, ListFilter{Status: "overdue", Today: today})
}

func (s *Service) ListUpcoming(ctx context.Context, today string) ([]model.Task, error) {
	return s.store.Tasks().List(ctx, ListFilter{Status: "upcoming", Today: today})
}

// AddTask persists a new incomplete task. Duplicate (name, date) pairs are
// rejected with ErrDuplicate.
func (s *Service) AddTask(ctx context.Context, name, date, difficulty string) (model.Task, []event.Event, error) {
	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	difficulty = strings.TrimSpace(difficulty)
	if name == "" || date == "" || difficulty == "" {
		return model.Task{}, nil, ErrEmptyField
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return model.Task{}, nil, ErrBadDate
	}

	exists, err := s.store.Tasks().Exists(ctx, name, date)
	if err != nil {
		return model.Task{}, nil, fmt.Errorf("task exists check: %w", err)
	}
	if exists {
		return model.Task{}, nil, ErrDuplicate
	}

	t, err := s.store.Tasks().Create(ctx, model.Task{
		Name:       name,
		Date:       date,
		Difficulty: difficulty,
		Completed:  false,
	})
	if err != nil {
		return model.Task{}, nil, fmt.Errorf("task create: %w", err)
	}
	return t, []event.Event{event.TaskAdded(t)}, nil
}

// ToggleCompletion sets a task's completed flag and applies the symmetric
// coin reward: +reward when completing, -reward (floored at zero) when
// un-completing. Repeating a call with the task already in the requested
// state changes nothing, so retries cannot double-award. Task and wallet
// are persisted as one unit. Returns the resulting balance.
func (s *Service) ToggleCompletion(ctx context.Context, id int, completed bool) (int, []event.Event, error) {
	t, err := s.store.Tasks().Get(ctx, id)
	if err != nil {
		return 0, nil, err
	}

	money, err := s.store.Wallet().Balance(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("wallet balance: %w", err)
	}

	if t.Completed == completed {
		return money, []event.Event{event.TaskUpdated(t.ID, completed)}, nil
	}

	delta := s.rewards.For(t.Difficulty)
	if !completed {
		delta = -delta
	}
	next := reward.Apply(money, delta)

	err = s.store.Atomically(ctx, func(tasks Repo, w wallet.Repo) error {
		if err := tasks.SetCompleted(ctx, id, completed); err != nil {
			return err
		}
		return w.SetBalance(ctx, next)
	})
	if err != nil {
		return 0, nil, err
	}

	return next, []event.Event{
		event.TaskUpdated(t.ID, completed),
		event.MoneyUpdated(next),
	}, nil
}

// DeleteTask removes a task permanently. Coins already earned stay earned.
func (s *Service) DeleteTask(ctx context.Context, id int) ([]event.Event, error) {
	if err := s.store.Tasks().Delete(ctx, id); err != nil {
		return nil, err
	}
	return []event.Event{event.TaskDeleted(id)}, nil
}

// Streak counts consecutive fully-completed days ending at today. A day
// counts when it has at least one task and every task on it is completed.
// Today itself may still be open: a chain ending yesterday counts too.
func (s *Service) Streak(ctx context.Context, today string) (int, error) {
	all, err := s.store.Tasks().List(ctx, ListFilter{})
	if err != nil {
		return 0, err
	}

	open := map[string]bool{}
	seen := map[string]bool{}
	for _, t := range all {
		seen[t.Date] = true
		if !t.Completed {
			open[t.Date] = true
		}
	}

	anchor, err := time.Parse(model.DateLayout, today)
	if err != nil {
		return 0, fmt.Errorf("parse today: %w", err)
	}

	day := anchor
	if !seen[today] || open[today] {
		day = anchor.AddDate(0, 0, -1)
	}

	streak := 0
	for seen[day.Format(model.DateLayout)] && !open[day.Format(model.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
