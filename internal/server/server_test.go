package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thoronador/hex2sv/internal/config"
	"github.com/Thoronador/hex2sv/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const actionIdleHex = "41 41 43 54 11 00 00 00 00 00 00 00 02 30 01 00 19 4B 0E 00 0F 00 01 00 45 44 49 44 0B 00 41 63 74 69 6F 6E 49 64 6C 65 00"

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	testlog.Start(t)
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, zerolog.Nop())
}

func post(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return postWithAuth(t, s, body, "")
}

func postWithAuth(t *testing.T, s *Server, body, authorization string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/encode", strings.NewReader(body))
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	s.Handler().ServeHTTP(rec, req)
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, out
}

func TestEncodeRecord(t *testing.T) {
	s := newTestServer(t, nil)

	rec, out := post(t, s, actionIdleHex+"\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}
	want := `AACT\x11\0\0\0\0\0\0\0\x02\x30\x01\0\x19\x4B\x0E\0\x0F\0\x01\0EDID\x0B\0ActionIdle\0`
	if out["literal"] != want {
		t.Fatalf("unexpected literal: %v", out["literal"])
	}
	if out["declaration"] != `const auto data = "`+want+`"sv;` {
		t.Fatalf("unexpected declaration: %v", out["declaration"])
	}
	if out["bytes"] != float64(41) {
		t.Fatalf("unexpected byte count: %v", out["bytes"])
	}
	info, ok := out["record"].(map[string]any)
	if !ok {
		t.Fatalf("missing record info: %v", out)
	}
	if info["tag"] != "AACT" || info["data_size"] != float64(17) {
		t.Fatalf("unexpected record info: %v", info)
	}
	if _, ok := info["warning"]; ok {
		t.Fatalf("unexpected size warning: %v", info)
	}
}

func TestEncodeCustomDeclaration(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Declaration.Name = "tag"
	})

	rec, out := post(t, s, "41 42")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if out["declaration"] != `const auto tag = "AB"sv;` {
		t.Fatalf("unexpected declaration: %v", out["declaration"])
	}
	if _, ok := out["record"]; ok {
		t.Fatalf("short input should carry no record info: %v", out)
	}
}

func TestEncodeEmpty(t *testing.T) {
	s := newTestServer(t, nil)

	rec, out := post(t, s, "  \n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if out["error"] != "Input is empty!" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
}

func TestEncodeFormatError(t *testing.T) {
	s := newTestServer(t, nil)

	rec, out := post(t, s, "41 41 4")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if out["error"] != "Value '4' at index 2 does not consist of two characters!" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
	if out["value"] != "4" || out["index"] != float64(2) {
		t.Fatalf("unexpected error position: %v", out)
	}
	if _, ok := out["literal"]; ok {
		t.Fatalf("partial output leaked: %v", out)
	}
}

func TestEncodeBodyTooLarge(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.MaxBodyBytes = 8
	})

	rec, _ := post(t, s, actionIdleHex)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHealthReadyMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", path, rec.Code)
		}
	}
}

func TestCorsPreflight(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.CorsOrigins = []string{"http://localhost:3000"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/encode", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
}

func TestEncodeRequiresConfiguredToken(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.AuthToken = "s3cret"
	})

	rec, out := post(t, s, "41 42")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status without token: %d", rec.Code)
	}
	if _, ok := out["literal"]; ok {
		t.Fatalf("literal returned without token: %v", out)
	}

	rec, out = postWithAuth(t, s, "41 42", "Bearer s3cret")
	if rec.Code != http.StatusOK || out["literal"] != "AB" {
		t.Fatalf("unexpected response with token: %d %v", rec.Code, out)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health must stay open, got %d", rec.Code)
	}
}
