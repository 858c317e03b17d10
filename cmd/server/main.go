package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jirateep/thudong-survey/internal/api"
	"github.com/jirateep/thudong-survey/internal/db"
	"github.com/jirateep/thudong-survey/internal/middleware"
	"github.com/jirateep/thudong-survey/internal/services"
)

func main() {
	_ = godotenv.Load()
	setDefaults()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(viper.GetString("db_path"))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Printf("close store: %v", cerr)
		}
	}()

	mux := http.NewServeMux()
	api.NewRouter(
		services.NewStatsService(store),
		services.NewCompareService(store),
		services.NewFeedbackService(store),
	).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "thudong-survey",
		})
	})

	handler := middleware.RequestID(middleware.AccessLog(mux))
	srv := &http.Server{Addr: viper.GetString("addr"), Handler: handler}

	go func() {
		log.Printf("thudong-survey server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
