package storage

import (
	"context"

	"chorepet/internal/task"
	"chorepet/internal/wallet"
)

// MemoryStore is the in-memory task.Store, for tests and throwaway runs.
// Individual repo calls are already mutex-guarded; Atomically just runs the
// mutation directly, which is enough under the single-writer model.
type MemoryStore struct {
	tasks  *task.MemoryRepo
	wallet *wallet.MemoryRepo
}

func NewMemoryStore(startingMoney int) *MemoryStore {
	return &MemoryStore{
		tasks:  task.NewMemoryRepo(),
		wallet: wallet.NewMemoryRepo(startingMoney),
	}
}

func (s *MemoryStore) Tasks() task.Repo    { return s.tasks }
func (s *MemoryStore) Wallet() wallet.Repo { return s.wallet }

func (s *MemoryStore) Atomically(ctx context.Context, fn func(tasks task.Repo, w wallet.Repo) error) error {
	return fn(s.tasks, s.wallet)
}
