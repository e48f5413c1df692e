package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"chorepet/internal/config"
	"chorepet/internal/event"
	"chorepet/internal/httpmw"
	"chorepet/internal/storage"
	"chorepet/internal/task"
	"chorepet/internal/wallet"
	"chorepet/internal/ws"
)

type Options struct {
	Config *config.Config
	Store  task.Store
	Logger *log.Logger

	// Pinger reports store reachability for /readyz; optional.
	Pinger interface {
		Ping(ctx context.Context) error
	}
}

// NewHandler assembles the full HTTP surface: the REST API, the websocket
// push channel and the health endpoints, wrapped in the middleware chain.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	hub := event.NewHub()

	taskSvc := task.NewService(opts.Store, opts.Config.Rewards)
	taskHandler := task.NewHandler(taskSvc, hub)

	walletSvc := wallet.NewService(opts.Store.Wallet())
	walletHandler := wallet.NewHandler(walletSvc, hub)

	mux := http.NewServeMux()

	mux.HandleFunc("/tasks", taskHandler.Tasks)
	mux.HandleFunc("/tasks/today", taskHandler.Today)
	mux.HandleFunc("/tasks/overdue", taskHandler.Overdue)
	mux.HandleFunc("/tasks/upcoming", taskHandler.Upcoming)
	mux.HandleFunc("/tasks/streak", taskHandler.Streak)
	mux.HandleFunc("/tasks/complete", taskHandler.Complete)
	mux.HandleFunc("/add", taskHandler.Add)
	mux.HandleFunc("/delete/", taskHandler.Delete)

	mux.HandleFunc("/money", walletHandler.Money)
	mux.HandleFunc("/money/spend", walletHandler.Spend)

	mux.Handle("/ws", ws.NewHandler(hub, opts.Logger))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "chorepet",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if opts.Pinger != nil {
			if err := opts.Pinger.Ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]any{
					"ok":    false,
					"error": "store unavailable",
				})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":          true,
			"service":     "chorepet",
			"subscribers": hub.SubscriberCount(),
			"time":        time.Now().UTC().Format(time.RFC3339),
		})
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithCORS,
		httpmw.WithRecover(opts.Logger),
	), nil
}

// OpenStore opens the sqlite store at the configured path and runs the
// migration, seeding the wallet on first boot.
func OpenStore(ctx context.Context, cfg *config.Config) (*storage.Store, error) {
	path := strings.TrimSpace(cfg.Storage.DBPath)
	if path == "" {
		path = storage.DefaultDBPath(cfg.Storage.DataDir)
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx, db, cfg.Wallet.StartingMoney); err != nil {
		_ = db.Close()
		return nil, err
	}
	return storage.NewStore(db), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
