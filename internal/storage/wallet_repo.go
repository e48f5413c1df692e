package storage

import (
	"context"
	"fmt"
)

// WalletRepo is the sqlite implementation of wallet.Repo. The wallet is the
// single row with id = 1, seeded by Migrate.
type WalletRepo struct {
	q querier
}

func NewWalletRepo(q querier) *WalletRepo {
	return &WalletRepo{q: q}
}

func (r *WalletRepo) Balance(ctx context.Context) (int, error) {
	var money int
	row := r.q.QueryRowContext(ctx, `SELECT money FROM wallet WHERE id = 1`)
	if err := row.Scan(&money); err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}
	return money, nil
}

func (r *WalletRepo) SetBalance(ctx context.Context, money int) error {
	if money < 0 {
		money = 0
	}
	if _, err := r.q.ExecContext(ctx,
		`UPDATE wallet SET money = ? WHERE id = 1`, money); err != nil {
		return fmt.Errorf("wallet set balance: %w", err)
	}
	return nil
}
