package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-parser-api/internal/config"
)

func newTestRouter() http.Handler {
	container := &config.Container{
		Config:         &handlerTestConfig{maxFileSize: 5 * 1024 * 1024},
		Logger:         NewMockHandlerLogger(),
		ProfileService: &mockProfileService{},
		ResumeService:  &mockResumeService{},
	}
	return NewRouter(container)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/upload"},
		{"POST", "/profile"},
		{"PUT", "/profile/user-1"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed && rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected rejection, got %d", tt.method, tt.path, rec.Code)
		}
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("OPTIONS", "/upload", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive CORS, got %q", got)
	}
}
