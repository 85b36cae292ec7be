package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"barclash/internal/config"
	"barclash/internal/server"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (or $BARCLASH_CONFIG)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}
	cfg, err := config.Resolve(*configPath, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServer(cfg).ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
}
