package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"buildbridge/internal/dispatch"
	"buildbridge/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockDispatcher struct {
	calls  []model.PushEvent
	output dispatch.HandlePushOutput
	err    error
}

func (m *mockDispatcher) HandlePush(ctx context.Context, event model.PushEvent) (dispatch.HandlePushOutput, error) {
	m.calls = append(m.calls, event)
	return m.output, m.err
}

func newTestRouter(dispatcher *mockDispatcher, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(dispatcher, SecurityConfig{Secret: secret, RateLimitPerMin: 600}, &mockLogger{})

	r := gin.New()
	r.GET("/webhooks/github", h.HandleHealth)
	r.POST("/webhooks/github", h.HandleGitHubWebhook)
	return r
}

func postWebhook(r *gin.Engine, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/github", bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGitHubWebhook(t *testing.T) {
	secret := "test-secret"
	pushBody := []byte(`{
		"ref": "refs/heads/main",
		"repository": {"full_name": "octocat/api"},
		"installation": {"id": 42},
		"head_commit": {"id": "abc123", "message": "fix"},
		"pusher": {"name": "octocat"}
	}`)

	t.Run("health check", func(t *testing.T) {
		r := newTestRouter(&mockDispatcher{}, secret)
		req := httptest.NewRequest(http.MethodGet, "/webhooks/github", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("signed push is dispatched and acknowledged", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		r := newTestRouter(dispatcher, secret)

		w := postWebhook(r, pushBody, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": sign(secret, pushBody),
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(dispatcher.calls) != 1 {
			t.Fatalf("expected 1 dispatch, got %d", len(dispatcher.calls))
		}
		if got := dispatcher.calls[0]; got.PushedBranch != "main" || got.InstallationID != 42 {
			t.Errorf("unexpected dispatched event: %+v", got)
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["ok"] != true {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid signature is rejected before parsing or dispatch", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		r := newTestRouter(dispatcher, secret)

		w := postWebhook(r, pushBody, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": sign("wrong-secret", pushBody),
		})

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if len(dispatcher.calls) != 0 {
			t.Errorf("expected no dispatch, got %d", len(dispatcher.calls))
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Invalid signature" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unsigned request is accepted when header absent", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		r := newTestRouter(dispatcher, secret)

		w := postWebhook(r, pushBody, map[string]string{"X-GitHub-Event": "push"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(dispatcher.calls) != 1 {
			t.Errorf("expected dispatch, got %d", len(dispatcher.calls))
		}
	})

	t.Run("malformed JSON yields 400", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		r := newTestRouter(dispatcher, secret)

		body := []byte(`{not json`)
		w := postWebhook(r, body, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": sign(secret, body),
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(dispatcher.calls) != 0 {
			t.Errorf("expected no dispatch, got %d", len(dispatcher.calls))
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Invalid JSON payload" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("placeholder events are acknowledged without dispatch", func(t *testing.T) {
		for _, eventType := range []string{"installation", "pull_request", "watch"} {
			dispatcher := &mockDispatcher{}
			r := newTestRouter(dispatcher, secret)

			body := []byte(`{"action": "created"}`)
			w := postWebhook(r, body, map[string]string{
				"X-GitHub-Event":      eventType,
				"X-Hub-Signature-256": sign(secret, body),
			})

			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", eventType, w.Code)
			}
			if len(dispatcher.calls) != 0 {
				t.Errorf("%s: expected no dispatch", eventType)
			}
		}
	})

	t.Run("dispatch failure still yields 200", func(t *testing.T) {
		dispatcher := &mockDispatcher{err: context.DeadlineExceeded}
		r := newTestRouter(dispatcher, secret)

		w := postWebhook(r, pushBody, map[string]string{
			"X-GitHub-Event":      "push",
			"X-Hub-Signature-256": sign(secret, pushBody),
		})

		if w.Code != http.StatusOK {
			t.Errorf("expected 200 despite dispatch failure, got %d", w.Code)
		}
	})
}
