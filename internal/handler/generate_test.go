package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	t.Run("forwards messages and returns content", func(t *testing.T) {
		env := newTestEnv(t, successReply(`"<p>hi</p>"`), http.StatusOK)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/generate",
			strings.NewReader(`{"messages":[{"role":"user","content":"make a page"}]}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d (%s)", rr.Code, rr.Body.String())
		}
		payload := decodeJSON(t, rr.Body.Bytes())
		if payload["content"] != "<p>hi</p>" {
			t.Errorf("content = %v", payload["content"])
		}
	})

	t.Run("upstream status is mirrored", func(t *testing.T) {
		env := newTestEnv(t, `{"error":"bad key"}`, http.StatusUnauthorized)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/generate",
			strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
		payload := decodeJSON(t, rr.Body.Bytes())
		if payload["error"] == "" {
			t.Error("error message missing")
		}
	})

	t.Run("empty message list rejected", func(t *testing.T) {
		env := newTestEnv(t, "", http.StatusOK)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"messages":[]}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("incomplete config is user-actionable", func(t *testing.T) {
		env := newTestEnv(t, "", http.StatusOK)
		env.cfg.AzureAPIKey = ""

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/generate",
			strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})
}
