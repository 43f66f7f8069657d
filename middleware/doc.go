// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level (method, path, client IP) and completion
(status, duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusCreated, analysis)
	middleware.ErrorResponse(w, http.StatusBadRequest, "invalid profile: ...")
	err := middleware.ParseJSONBody(r, &input)

# Request Bodies

	middleware.LimitBody(w, r, cfg.MaxBodyBytes)
	body, err := middleware.ReadBody(r)
	if middleware.IsBodyTooLarge(err) {
		// 413
	}

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
