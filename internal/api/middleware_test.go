package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestID(r)
	})
	handler := requestIDMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/analysis", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	id := rr.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "expected a uuid, got %q", id)
	assert.Equal(t, id, seen)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/analysis", nil)
	req.Header.Set(requestIDHeader, "client-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "client-123", rr.Header().Get(requestIDHeader))
}

func TestLogMiddleware_PassesStatus(t *testing.T) {
	handler := logMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestParseZ(t *testing.T) {
	cases := []struct {
		query    string
		expected float64
		wantErr  bool
	}{
		{"", 3, false},
		{"?z=2", 2, false},
		{"?z=1.5", 1.5, false},
		{"?z=0", 0, false},
		{"?z=-1", -1, false},
		{"?z=abc", 0, true},
		{"?z=NaN", 0, true},
		{"?z=Inf", 0, true},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/analysis"+tc.query, nil)
		got, err := parseZ(req, 3)
		if tc.wantErr {
			assert.Error(t, err, "parseZ(%q)", tc.query)
			continue
		}
		require.NoError(t, err, "parseZ(%q)", tc.query)
		assert.Equal(t, tc.expected, got, "parseZ(%q)", tc.query)
	}
}

func TestCorsMiddleware_Headers(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := corsMiddleware(inner, "https://myapp.example.com")

	req := httptest.NewRequest(http.MethodGet, "/analysis", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "https://myapp.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestCorsMiddleware_DefaultOrigin(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), "")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called for OPTIONS")
	})
	handler := corsMiddleware(inner, "*")

	req := httptest.NewRequest(http.MethodOptions, "/analysis", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", rr.Code)
	}
}
