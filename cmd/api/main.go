package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/fittracker/internal/api"
	"example.com/fittracker/internal/auth"
	"example.com/fittracker/internal/config"
	"example.com/fittracker/internal/publish"
	httptransport "example.com/fittracker/internal/transport/http"
)

func main() {
	cfg := config.Load()

	var publisher publish.SummaryPublisher = publish.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := publish.NewKafkaProducer(cfg.KafkaBrokers)
		defer producer.Close()
		publisher = publish.NewPublisher(producer, cfg.SummaryTopic)
		log.Printf("publishing summaries to %s via %v", cfg.SummaryTopic, cfg.KafkaBrokers)
	}

	handler := api.NewHandler(publisher, cfg.AuthEnabled)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	var root http.Handler = logger(mux)
	if cfg.AuthEnabled {
		root = auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}).Wrap(root)
	}

	server := httptransport.NewServer(httptransport.ServerConfig{Address: cfg.HTTPAddress}, root)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("fittracker api listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
