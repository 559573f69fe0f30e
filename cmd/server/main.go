package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/narrowphase/internal/config"
	"github.com/zeusync/narrowphase/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address, overrides server.listen_addr")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.ListenAddr = *addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, err := injector.InitializeServer(cfg)
	if err != nil {
		fmt.Println("Error creating server:", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		fmt.Println("Error starting server:", err)
		os.Exit(1)
	}

	<-ctx.Done()
	if err := srv.Stop(context.Background()); err != nil {
		fmt.Println("Error stopping server:", err)
	}
}
