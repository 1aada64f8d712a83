package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citypulse/waterlog-api/internal/config"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	return NewWorker(nil, logger, cfg)
}

func testEvent() (ReportEvent, string) {
	event := ReportEvent{
		EventID:   uuid.New(),
		ReportID:  12,
		OldStatus: "OPEN",
		NewStatus: "RESOLVED",
		Severity:  "HIGH",
		Timestamp: time.Now().UTC(),
	}
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestDeliver_SignsPayloadWithSharedSecret(t *testing.T) {
	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "shared-secret",
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	event, payload := testEvent()
	worker.deliver(context.Background(), event, payload)

	require.Equal(t, payload, string(gotBody))
	mac := hmac.New(sha256.New, []byte("shared-secret"))
	mac.Write([]byte(payload))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Millisecond,
	})

	event, payload := testEvent()
	worker.deliver(context.Background(), event, payload)

	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	event, payload := testEvent()
	worker.deliver(context.Background(), event, payload)

	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_SkipsWhenURLNotConfigured(t *testing.T) {
	worker := newTestWorker(&config.Config{
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	event, payload := testEvent()
	// No HTTP server involved; a configured URL of "" means delivery
	// is skipped rather than attempted.
	worker.deliver(context.Background(), event, payload)
}

func TestPublishEventPayloadRoundTrip(t *testing.T) {
	event, payload := testEvent()

	var decoded ReportEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.ReportID, decoded.ReportID)
	assert.Equal(t, "RESOLVED", decoded.NewStatus)
}
