// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/certificate-wizard/handlers"
	"github.com/danielhkuo/certificate-wizard/middleware"
	"github.com/danielhkuo/certificate-wizard/store"
	"github.com/danielhkuo/certificate-wizard/wizard"
)

func NewRouter(st store.Store, sub wizard.Submitter) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler()
	sessionHandler := handlers.NewSessionHandler(st, sub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Option lists
	mux.HandleFunc("GET /certificate-types", middleware.WithLogging(catalogHandler.ListCertificateTypes))
	mux.HandleFunc("GET /blood-groups", middleware.WithLogging(catalogHandler.ListBloodGroups))

	// Wizard sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.Delete))
	mux.HandleFunc("POST /sessions/{id}/select", middleware.WithLogging(sessionHandler.SelectType))
	mux.HandleFunc("POST /sessions/{id}/back", middleware.WithLogging(sessionHandler.GoBack))
	mux.HandleFunc("POST /sessions/{id}/submit", middleware.WithLogging(sessionHandler.Submit))
	mux.HandleFunc("POST /sessions/{id}/reset", middleware.WithLogging(sessionHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("certificate-wizard API v1"))
	})

	return mux
}
