// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/btva/middleware"
	"github.com/danielhkuo/btva/models"
	"github.com/danielhkuo/btva/voting"
)

const maxSchemeAlternatives = 1000

// ListSchemes handles GET /schemes?m=
// Returns every scheme's scoring vector for m alternatives (default 3)
func ListSchemes(w http.ResponseWriter, r *http.Request) {
	m := 3
	if v := r.URL.Query().Get("m"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 || n > maxSchemeAlternatives {
			middleware.ErrorResponse(w, http.StatusBadRequest, "m must be an integer between 2 and 1000")
			return
		}
		m = n
	}

	resp := models.ListSchemesResponse{Alternatives: m}
	for _, s := range voting.Schemes() {
		vec, err := voting.ScoringVector(s, m)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Schemes = append(resp.Schemes, models.SchemeInfo{Scheme: s.String(), Vector: vec})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
