package task

import (
	"context"

	"chorepet/internal/model"
	"chorepet/internal/wallet"
)

// ListFilter narrows a task listing.
type ListFilter struct {
	// Date filters to tasks on exactly this day. Empty means no date match.
	Date string

	// Status:
	//   "" | "all"  -> everything
	//   "overdue"   -> date < Today and not completed, date-ascending
	//   "upcoming"  -> date > Today, date-ascending
	Status string

	// Today anchors the overdue/upcoming comparisons.
	Today string
}

type Repo interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int) (model.Task, error)
	List(ctx context.Context, filter ListFilter) ([]model.Task, error)
	SetCompleted(ctx context.Context, id int, completed bool) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, name, date string) (bool, error)
}

// Store binds the task and wallet repositories to one durable store.
// Atomically runs fn as a single unit: either every write inside it lands
// or none do.
type Store interface {
	Tasks() Repo
	Wallet() wallet.Repo
	Atomically(ctx context.Context, fn func(tasks Repo, w wallet.Repo) error) error
}
