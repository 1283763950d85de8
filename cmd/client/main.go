package main

import (
	"collections/client"
	"collections/config"
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

	manager, err := client.NewClientsManager(conf)
	if err != nil {
		logger.Crit("Cannot create clients manager", "error", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		manager.Cancel()
	}()

	if err := manager.ListenClientActions(); err != nil {
		logger.Crit("Reading client actions failed", "error", err)
		os.Exit(1)
	}
}
