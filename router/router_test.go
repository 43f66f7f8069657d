// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/btva/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "btva API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	// Routes must reach a handler; 400/404 from the handler still counts
	testCases := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/health", ""},
		{"GET", "/", ""},
		{"GET", "/schemes", ""},
		{"GET", "/schemes?m=5", ""},
		{"POST", "/analyses", "{}"},
		{"POST", "/analyses/ballots?scheme=borda", ""},
		{"GET", "/analyses", ""},
		{"GET", "/analyses/missing-id", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405", tc.method, tc.path)
			}
			if w.Code == http.StatusNotFound && w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("DELETE", "/analyses", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	body := "# 3 candidates\n2:0>1>2\n1:1>2>0\n"
	req := testutil.MakeTextRequest("POST", "/analyses/ballots?scheme=plurality", body)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created struct {
		ID     string `json:"id"`
		Winner string `json:"winner"`
	}
	testutil.AssertJSON(t, w, &created)
	if created.Winner != "0" {
		t.Errorf("Expected winner '0', got '%s'", created.Winner)
	}

	req = httptest.NewRequest("GET", "/analyses/"+created.ID, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
