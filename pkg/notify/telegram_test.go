package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gantry-hq/gantry/pkg/config"
)

func testHTTPConfig() config.HTTPConfig {
	return config.HTTPConfig{
		Timeout:        config.Duration(5 * time.Second),
		ConnectTimeout: config.Duration(time.Second),
		MaxRetries:     0,
	}
}

func TestNotifier_SendsMessage(t *testing.T) {
	var gotPath string
	var gotReq sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	n := New(config.TelegramConfig{
		Enabled:    true,
		BotToken:   "token123",
		ChatID:     "42",
		APIBaseURL: server.URL,
	}, testHTTPConfig())
	defer n.Close()

	n.Send(context.Background(), "deploy finished")

	if gotPath != "/bottoken123/sendMessage" {
		t.Errorf("path = %q, want /bottoken123/sendMessage", gotPath)
	}
	if gotReq.ChatID != "42" {
		t.Errorf("chat_id = %q, want 42", gotReq.ChatID)
	}
	if gotReq.Text != "deploy finished" {
		t.Errorf("text = %q", gotReq.Text)
	}
	if gotReq.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want Markdown", gotReq.ParseMode)
	}
}

func TestNotifier_DisabledIsNoOp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	n := New(config.TelegramConfig{
		Enabled:    false,
		BotToken:   "token123",
		ChatID:     "42",
		APIBaseURL: server.URL,
	}, testHTTPConfig())
	defer n.Close()

	if n.Enabled() {
		t.Error("disabled notifier reports enabled")
	}
	n.Send(context.Background(), "should not arrive")
	n.SendError(context.Background(), "boom", context.Canceled)

	if calls.Load() != 0 {
		t.Errorf("server saw %d calls, want 0", calls.Load())
	}
}

func TestNotifier_MissingTokenIsNoOp(t *testing.T) {
	n := New(config.TelegramConfig{
		Enabled: true,
		ChatID:  "42",
	}, testHTTPConfig())
	defer n.Close()

	if n.Enabled() {
		t.Error("notifier without a token reports enabled")
	}
	// Must not panic without a client.
	n.Send(context.Background(), "nowhere to go")
}

func TestNotifier_DeliveryFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := New(config.TelegramConfig{
		Enabled:    true,
		BotToken:   "revoked",
		ChatID:     "42",
		APIBaseURL: server.URL,
	}, testHTTPConfig())
	defer n.Close()

	// No error surfaces; the failure is only logged.
	n.Send(context.Background(), "rejected upstream")
}

func TestNotifier_Sendf(t *testing.T) {
	var gotReq sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	n := New(config.TelegramConfig{
		Enabled:    true,
		BotToken:   "token123",
		ChatID:     "42",
		APIBaseURL: server.URL,
	}, testHTTPConfig())
	defer n.Close()

	n.Sendf(context.Background(), "batch %s done in %d steps", "nightly", 3)

	if gotReq.Text != "batch nightly done in 3 steps" {
		t.Errorf("text = %q", gotReq.Text)
	}
}
