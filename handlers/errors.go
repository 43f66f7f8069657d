// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/btva/ballots"
	"github.com/danielhkuo/btva/middleware"
	"github.com/danielhkuo/btva/voting"
)

// inputErrors are caller mistakes; their messages go back verbatim
var inputErrors = []error{
	voting.ErrInvalidProfile,
	voting.ErrUnsupportedScheme,
	voting.ErrInvalidSchemeParameter,
	voting.ErrUnknownAlternative,
	ballots.ErrMissingHeader,
	ballots.ErrMalformedBallotLine,
	ballots.ErrBallotAlternativeMismatch,
	ballots.ErrMissingScheme,
	ballots.ErrUnsupportedFormat,
}

func writeInputError(w http.ResponseWriter, err error) {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	// JSON/YAML decode failures
	slog.Debug("rejected input", "error", err)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid input: "+err.Error())
}

func writeBodyError(w http.ResponseWriter, err error) {
	if middleware.IsBodyTooLarge(err) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	slog.Error("failed to read request body", "error", err)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
}
