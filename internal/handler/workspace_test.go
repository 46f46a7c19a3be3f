package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func login(t *testing.T, env *testEnv, workspaceID string) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"username":"fd25","password":"fd25","workspace":"`+workspaceID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	env.engine.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d (%s)", rr.Code, rr.Body.String())
	}
}

func TestGetWorkspace(t *testing.T) {
	env := newTestEnv(t, successReply(`"ok"`), http.StatusOK)

	rr := httptest.NewRecorder()
	env.engine.ServeHTTP(rr, httptest.NewRequest("GET", "/api/workspaces/ws1", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	payload := decodeJSON(t, rr.Body.Bytes())
	if payload["authorized"] != false {
		t.Error("fresh workspace should not be authorized")
	}
	if payload["busy"] != false {
		t.Error("fresh workspace should not be busy")
	}
	cfg, ok := payload["config"].(map[string]any)
	if !ok {
		t.Fatal("config missing")
	}
	if cfg["apiKey"] != "" {
		t.Error("credential must be redacted in workspace state")
	}
}

func TestSendMessageEndpoint(t *testing.T) {
	reply := `"Here you go:\n` + "```" + `html\n<p>done</p>\n` + "```" + `"`

	t.Run("turn updates draft", func(t *testing.T) {
		env := newTestEnv(t, successReply(reply), http.StatusOK)
		login(t, env, "ws1")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/workspaces/ws1/messages",
			strings.NewReader(`{"prompt":"make a page"}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d (%s)", rr.Code, rr.Body.String())
		}
		payload := decodeJSON(t, rr.Body.Bytes())
		if payload["code"] != "<p>done</p>" {
			t.Errorf("code = %v", payload["code"])
		}
		if env.store.slots["ws1/draft"] != "<p>done</p>" {
			t.Error("draft slot should hold the extracted code")
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		env := newTestEnv(t, successReply(`"ok"`), http.StatusOK)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/workspaces/ws1/messages", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("unauthorized workspace", func(t *testing.T) {
		env := newTestEnv(t, successReply(`"ok"`), http.StatusOK)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/workspaces/ws1/messages",
			strings.NewReader(`{"prompt":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		env.engine.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400 for incomplete config", rr.Code)
		}
	})
}

func TestDraftAndRunEndpoints(t *testing.T) {
	env := newTestEnv(t, successReply(`"ok"`), http.StatusOK)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/workspaces/ws1/draft",
		strings.NewReader(`{"code":"<html><head><title>Mine</title></head><body></body></html>"}`))
	req.Header.Set("Content-Type", "application/json")
	env.engine.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("draft status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	env.engine.ServeHTTP(rr, httptest.NewRequest("POST", "/api/workspaces/ws1/run", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("run status = %d", rr.Code)
	}
	payload := decodeJSON(t, rr.Body.Bytes())
	if payload["title"] != "Mine" {
		t.Errorf("title = %v", payload["title"])
	}
	if env.store.slots["ws1/preview"] != env.store.slots["ws1/draft"] {
		t.Error("run should copy the draft into the preview slot")
	}
}

func TestClearChatEndpoint(t *testing.T) {
	env := newTestEnv(t, successReply(`"ok"`), http.StatusOK)

	rr := httptest.NewRecorder()
	env.engine.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/workspaces/ws1/messages", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	payload := decodeJSON(t, rr.Body.Bytes())
	messages, ok := payload["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Errorf("messages = %v, want only the system seed", payload["messages"])
	}
}

func TestStaticFallback(t *testing.T) {
	env := newTestEnv(t, "", http.StatusOK)

	t.Run("asset", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.engine.ServeHTTP(rr, httptest.NewRequest("GET", "/app.js", http.NoBody))
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "console.log") {
			t.Errorf("asset not served: %d", rr.Code)
		}
	})

	t.Run("unknown path falls back to index", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.engine.ServeHTTP(rr, httptest.NewRequest("GET", "/some/deep/route", http.NoBody))
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "app") {
			t.Errorf("index fallback not served: %d", rr.Code)
		}
	})

	t.Run("unknown api path stays 404", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.engine.ServeHTTP(rr, httptest.NewRequest("GET", "/api/nope", http.NoBody))
		if rr.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rr.Code)
		}
	})
}
