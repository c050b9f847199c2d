package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"musiclibrary/internal/logging"
)

func TestRequestLoggingSetsRequestID(t *testing.T) {
	var seen string
	handler := RequestLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}
	if seen == "" || rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected generated request id %q in header, got %q", seen, rec.Header().Get("X-Request-ID"))
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "abc" {
		t.Fatalf("expected client request id to be reused, got %q", seen)
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    string
		origin     string
		preflight  bool
		wantOrigin string
		wantStatus int
	}{
		{name: "disabled", allowed: "", origin: "http://a.test", wantStatus: http.StatusOK},
		{name: "wildcard", allowed: "*", origin: "http://a.test", wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "listed", allowed: "http://a.test, http://b.test", origin: "http://b.test", wantOrigin: "http://b.test", wantStatus: http.StatusOK},
		{name: "unlisted", allowed: "http://a.test", origin: "http://c.test", wantStatus: http.StatusOK},
		{name: "preflight", allowed: "http://a.test", origin: "http://a.test", preflight: true, wantOrigin: "http://a.test", wantStatus: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			method := http.MethodGet
			if tc.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/api/v1/artists", nil)
			req.Header.Set("Origin", tc.origin)
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("expected allow origin %q, got %q", tc.wantOrigin, got)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
