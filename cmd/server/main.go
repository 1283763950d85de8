package main

import (
	"collections/config"
	"collections/server"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "~/.collections/config.yaml", "path to the YAML config")
	flag.Parse()

	conf, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}
	logger := conf.NewLogger("main")

	srv, err := server.NewServer(conf)
	if err != nil {
		logger.Crit("Cannot create server", "error", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("Shutting down")
		srv.Cancel()
	}()

	if err := srv.StartServer(); err != nil {
		logger.Crit("Server failed", "error", err)
		os.Exit(1)
	}
}
