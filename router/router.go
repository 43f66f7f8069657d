// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/btva/cliparse"
	"github.com/danielhkuo/btva/db"
	"github.com/danielhkuo/btva/handlers"
	"github.com/danielhkuo/btva/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	analysisHandler := handlers.NewAnalysisHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scoring vectors
	mux.HandleFunc("GET /schemes", middleware.WithLogging(handlers.ListSchemes))

	// Analyses
	mux.HandleFunc("POST /analyses", middleware.WithLogging(analysisHandler.CreateAnalysis))
	mux.HandleFunc("POST /analyses/ballots", middleware.WithLogging(analysisHandler.CreateAnalysisFromBallots))
	mux.HandleFunc("GET /analyses", middleware.WithLogging(analysisHandler.ListAnalyses))
	mux.HandleFunc("GET /analyses/{id}", middleware.WithLogging(analysisHandler.GetAnalysis))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("btva API v1"))
	})

	return mux
}
