package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"Nirman/internal/auth"
	"Nirman/internal/config"
)

func testServer(t *testing.T, tokenKey string) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Addr: ":0"},
		Auth:      config.AuthConfig{TokenKey: tokenKey},
		RateLimit: config.RateLimitConfig{RPS: 100, Burst: 100},
		Estimate:  config.EstimateConfig{GSTRate: 0.18},
	}
	router := mux.NewRouter()
	HandleList(router, cfg, zap.NewNop())
	srv := httptest.NewServer(CORS(router))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRoutes(t *testing.T) {
	srv := testServer(t, "")

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health = %d", resp.StatusCode)
	}

	tests := []struct {
		path string
		body string
		want int
	}{
		{"/api/tools/beam/calc", `{"mu_knm":150,"vu_kn":80,"width_mm":230,"depth_mm":450,"cover_mm":30,"fck":25,"fy":500}`, http.StatusOK},
		{"/api/tools/column/calc", `{"pu_kn":1500,"width_mm":300,"depth_mm":300,"length_mm":3000,"fck":20,"fy":415,"cover_mm":40}`, http.StatusOK},
		{"/api/tools/boq/calc", `{"length_m":10,"breadth_m":12,"floors":2,"grade_key":"standard"}`, http.StatusOK},
		{"/api/tools/boq/floors/calc", `{"length_m":10,"breadth_m":12,"floors":2,"grade_key":"standard"}`, http.StatusOK},
		{"/api/tools/loads/calc", `{"dead_kn":12,"live_kn":8,"span_m":6}`, http.StatusOK},
		{"/api/tools/beam/auto", `{"mu_knm":150,"vu_kn":80,"width_mm":230,"cover_mm":30,"fck":25,"fy":500}`, http.StatusOK},
		{"/api/tools/column/batch", `{"items":[{"pu_kn":1500,"width_mm":300,"depth_mm":300,"length_mm":3000,"fck":20,"fy":415,"cover_mm":40}]}`, http.StatusOK},
		{"/api/tools/boq/xlsx", `{"length_m":10,"breadth_m":12,"floors":1,"grade_key":"standard"}`, http.StatusOK},
		{"/api/tools/boq/pdf", `{"input":{"length_m":10,"breadth_m":12,"floors":1,"grade_key":"standard"}}`, http.StatusOK},
		{"/api/tools/beam/calc", `{"vu_kn":80}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp := post(t, srv.URL+tt.path, "", tt.body)
		if resp.StatusCode != tt.want {
			t.Errorf("POST %s = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestWrongMethod(t *testing.T) {
	srv := testServer(t, "")
	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/tools/beam/calc", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/tools/boq/xlsx", http.StatusMethodNotAllowed},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/tools/nothing", http.StatusNotFound},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestRoutesRequireToken(t *testing.T) {
	srv := testServer(t, "secret")
	body := `{"dead_kn":12,"live_kn":8}`

	if resp := post(t, srv.URL+"/api/tools/loads/calc", "", body); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", resp.StatusCode)
	}
	token, err := (&auth.Authenv{JWTkey: []byte("secret")}).IssueToken("tester", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if resp := post(t, srv.URL+"/api/tools/loads/calc", token, body); resp.StatusCode != http.StatusOK {
		t.Errorf("with token = %d, want 200", resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health must stay open, got %d", resp.StatusCode)
	}
}
