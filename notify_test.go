package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
)

func TestPostChatWebhook(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("payload is not JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := PostChatWebhook(srv.URL, "Shift Operations Report"); err != nil {
		t.Fatalf("PostChatWebhook failed: %v", err)
	}
	if received["text"] != "Shift Operations Report" {
		t.Fatalf("unexpected payload: %+v", received)
	}
}

func TestPostChatWebhookNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := PostChatWebhook(srv.URL, "body")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

type fakeSlackPoster struct {
	channelID string
	text      string
	err       error
}

func (f *fakeSlackPoster) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	f.channelID = channelID
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "123.456", nil
}

func TestPostSlackReport(t *testing.T) {
	fake := &fakeSlackPoster{}
	result := ReportResult{ChatBody: "report body"}

	if err := PostSlackReport(fake, "C123", result); err != nil {
		t.Fatalf("PostSlackReport failed: %v", err)
	}
	if fake.channelID != "C123" {
		t.Fatalf("expected channel C123, got %q", fake.channelID)
	}

	fake.err = errors.New("channel_not_found")
	if err := PostSlackReport(fake, "C999", result); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestDeliverReportWebhookOnly(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := Config{
		ChatTarget:   "group_all",
		ChatWebhooks: map[string]string{"group_all": srv.URL},
	}
	if err := DeliverReport(cfg, ReportResult{ChatBody: "body"}); err != nil {
		t.Fatalf("DeliverReport failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 webhook call, got %d", calls)
	}
}

func TestDeliverReportSurfacesWebhookFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := Config{
		ChatTarget:   "group_all",
		ChatWebhooks: map[string]string{"group_all": srv.URL},
	}
	if err := DeliverReport(cfg, ReportResult{ChatBody: "body"}); err == nil {
		t.Fatal("expected delivery error")
	}
}

func TestDeliverReportNoDestinations(t *testing.T) {
	if err := DeliverReport(Config{}, ReportResult{ChatBody: "body"}); err != nil {
		t.Fatalf("expected no-op delivery to succeed, got %v", err)
	}
}
