package storage

import (
	"context"
	"database/sql"
	"fmt"

	"chorepet/internal/task"
	"chorepet/internal/wallet"
)

// Store is the sqlite-backed task.Store. Repos handed out by Tasks/Wallet
// run directly against the database; Atomically rebinds them to one
// transaction so a multi-row mutation commits or rolls back as a unit.
type Store struct {
	db     *sql.DB
	tasks  *TaskRepo
	wallet *WalletRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     db,
		tasks:  NewTaskRepo(db),
		wallet: NewWalletRepo(db),
	}
}

func (s *Store) Tasks() task.Repo     { return s.tasks }
func (s *Store) Wallet() wallet.Repo  { return s.wallet }
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Atomically(ctx context.Context, fn func(tasks task.Repo, w wallet.Repo) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(NewTaskRepo(tx), NewWalletRepo(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
