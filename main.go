package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/certificate-wizard/cliparse"
	"github.com/danielhkuo/certificate-wizard/middleware"
	"github.com/danielhkuo/certificate-wizard/router"
	"github.com/danielhkuo/certificate-wizard/store"
	"github.com/danielhkuo/certificate-wizard/submission"
)

func main() {
	var err error

	// Load .env if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open session store
	st, err := store.Open(cfg.SessionStore, cfg.DatabaseURL, cfg.SessionTTL)
	if err != nil {
		slog.Error("session store open failed", "store", cfg.SessionStore, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Session store ready", "store", cfg.SessionStore, "ttl", cfg.SessionTTL)

	client := submission.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, nil)

	// Create router
	mux := router.NewRouter(st, client)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		// In-flight submissions get up to one webhook timeout to finish
		ctx, cancel := context.WithTimeout(context.Background(), cfg.WebhookTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("Shutdown timed out", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "webhook", client.URL())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
