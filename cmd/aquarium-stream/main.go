package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aquarium/internal/app"
	"aquarium/internal/aquarium"
	"aquarium/internal/stream"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	tank := aquarium.NewWithConfig(aquarium.FromMap(cfg.SimConfig()))
	hub := stream.NewHub()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("aquarium frame stream: connect to /ws\n"))
	})
	srv := &http.Server{Addr: *addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Streaming %s at %d tps on ws://localhost%s/ws", tank.Name(), cfg.TPS, *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
			stop()
		}
	}()

	if err := stream.Run(ctx, tank, hub, cfg.TPS); err != nil {
		log.Printf("stream stopped: %v", err)
	}

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Printf("Stopped after %d frames (%.1fs simulated)", tank.Frames(), tank.Elapsed())
}
