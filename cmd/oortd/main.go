// Command oortd is the simulation host process: it serves an HTTP API
// for starting scenario runs and streams their live snapshots out over
// websocket. Generalizes the teacher's main.go (static file server +
// websocket hub + signal-based graceful shutdown).
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/oortcore/simulator/config"
	"github.com/oortcore/simulator/host"
)

func main() {
	configFile := flag.String("config", "", "configuration file name (without extension), searched in . and data/config")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("oortd: %v", err)
	}

	logger := log.New(os.Stdout, "[oortd "+cfg.InstanceID+"] ", log.LstdFlags)
	logger.Printf("starting oortd (environment=%s, listen=%s)", cfg.Environment, cfg.ListenAddr)

	hub := host.NewHub(logger, host.Defaults{
		Scenario: cfg.DefaultScenario,
		Seed:     cfg.DefaultSeed,
		Deadline: cfg.ControllerDeadline,
	})

	// Wrap the mux in combined access logging and panic recovery, the
	// same pair Knoblauchpilze-sogserver's pkg/dispatcher applies to its
	// HTTP front door via the same gorilla/handlers package.
	wrapped := handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(hub.Mux()))

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      wrapped,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Printf("shutting down (signal: %v)...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Println("oortd stopped")
}
