package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() MediaPayload {
	return MediaPayload{
		UserID:        "user-1",
		Date:          "2026-02-17",
		MediaURL:      "http://localhost:8080/uploads/standups/user-1/audio.webm",
		MediaType:     "audio",
		MediaFilename: "audio.webm",
		Bucket:        "standup-media",
	}
}

func TestNotify_Success(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Notify(context.Background(), testPayload())

	assert.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestNotify_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.delay = 10 * time.Millisecond

	err := client.Notify(context.Background(), testPayload())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestNotify_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var stamps []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		stamps = append(stamps, time.Now())
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	err := client.Notify(context.Background(), testPayload())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "status 500")
	require.Len(t, stamps, 3)

	// Linear delay: attempts spaced by the fixed 2s, not growing
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		assert.GreaterOrEqual(t, gap, 2*time.Second-100*time.Millisecond)
		assert.Less(t, gap, 3*time.Second)
	}
}

func TestNotify_ContextCancelledDuringDelay(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := client.Notify(ctx, testPayload())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
