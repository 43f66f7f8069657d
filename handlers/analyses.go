// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/btva/ballots"
	"github.com/danielhkuo/btva/cliparse"
	"github.com/danielhkuo/btva/db"
	"github.com/danielhkuo/btva/middleware"
	"github.com/danielhkuo/btva/models"
	"github.com/danielhkuo/btva/report"
	"github.com/danielhkuo/btva/voting"
)

type AnalysisHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAnalysisHandler(store *db.Store, cfg cliparse.Config) *AnalysisHandler {
	return &AnalysisHandler{store: store, cfg: cfg}
}

// CreateAnalysis handles POST /analyses
// Body is the structured JSON input; ?scheme= overrides the body's scheme
func (h *AnalysisHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	middleware.LimitBody(w, r, h.cfg.MaxBodyBytes)

	var in models.StructuredInput
	if err := middleware.ParseJSONBody(r, &in); err != nil {
		if middleware.IsBodyTooLarge(err) {
			writeBodyError(w, err)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	parsed, err := ballots.FromStructured(ballots.FormatJSON, in)
	if err != nil {
		writeInputError(w, err)
		return
	}

	h.analyze(w, r, parsed, models.SourceJSON)
}

// CreateAnalysisFromBallots handles POST /analyses/ballots?scheme=
// Body is ranked-ballot text
func (h *AnalysisHandler) CreateAnalysisFromBallots(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("scheme") == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scheme query parameter is required")
		return
	}

	middleware.LimitBody(w, r, h.cfg.MaxBodyBytes)

	body, err := middleware.ReadBody(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	parsed, err := ballots.Parse(ballots.FormatABIF, body)
	if err != nil {
		writeInputError(w, err)
		return
	}

	h.analyze(w, r, parsed, models.SourceABIF)
}

func (h *AnalysisHandler) analyze(w http.ResponseWriter, r *http.Request, parsed ballots.Parsed, source string) {
	scheme, err := parsed.ResolveScheme(r.URL.Query().Get("scheme"))
	if err != nil {
		writeInputError(w, err)
		return
	}

	res, err := voting.Analyze(scheme, parsed.Profile)
	if err != nil {
		writeInputError(w, err)
		return
	}

	saved, err := h.store.SaveAnalysis(r.Context(), report.FromResult(res, source))
	if err != nil {
		slog.Error("failed to save analysis", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	slog.Info("analysis created",
		"analysis_id", saved.ID,
		"scheme", saved.Scheme,
		"winner", saved.Winner,
		"voters", saved.Voters,
	)

	middleware.JSONResponse(w, http.StatusCreated, saved)
}

// GetAnalysis handles GET /analyses/{id}
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	a, err := h.store.GetAnalysis(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		slog.Error("failed to query analysis", "analysis_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, a)
}

// ListAnalyses handles GET /analyses?limit=
func (h *AnalysisHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	analyses, err := h.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list analyses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListAnalysesResponse{Analyses: analyses})
}
