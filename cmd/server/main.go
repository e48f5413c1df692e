package main

import (
	"context"
	"log"
	"net/http"

	"chorepet/internal/config"
	"chorepet/internal/serverapp"
)

func main() {
	cfg, err := config.Load("chorepet_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := serverapp.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Store:  store,
		Pinger: store,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
