package task

import (
	"context"
	"sort"
	"strings"
	"sync"

	"chorepet/internal/model"
)

// MemoryRepo is an in-memory task repository. The sqlite repo is the durable
// one; this backs tests and throwaway runs.
type MemoryRepo struct {
	mu     sync.RWMutex
	tasks  map[int]model.Task
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tasks: map[int]model.Task{}}
}

func (r *MemoryRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := func(t model.Task) bool {
		if filter.Date != "" && t.Date != filter.Date {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(filter.Status)) {
		case "", "all":
			return true
		case "overdue":
			// YYYY-MM-DD compares lexicographically
			return !t.Completed && t.Date < filter.Today
		case "upcoming":
			return t.Date > filter.Today
		default:
			return true
		}
	}

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if matches(t) {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) SetCompleted(ctx context.Context, id int, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	t.Completed = completed
	r.tasks[id] = t
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, name, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.Name == name && t.Date == date {
			return true, nil
		}
	}
	return false, nil
}
