package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	maxAttempts    = 3
	retryDelay     = 2 * time.Second
	attemptTimeout = 30 * time.Second
)

// MediaPayload is the contract of the media processing pipeline: the pipeline
// transcribes audio and extracts standup fields from images, then calls back
// with the result.
type MediaPayload struct {
	UserID        string `json:"user_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	MediaURL      string `json:"media_url"`
	MediaType     string `json:"media_type"` // audio, image
	MediaFilename string `json:"media_filename"`
	Bucket        string `json:"bucket"`
}

// Client posts media payloads to the processing webhook. Failed deliveries are
// retried with a fixed linear delay, never exponential; each attempt carries
// its own timeout.
type Client struct {
	url        string
	httpClient *http.Client

	attempts       int
	delay          time.Duration
	attemptTimeout time.Duration
}

func NewClient(url string) *Client {
	return &Client{
		url:            url,
		httpClient:     &http.Client{},
		attempts:       maxAttempts,
		delay:          retryDelay,
		attemptTimeout: attemptTimeout,
	}
}

// Notify delivers the payload, retrying transient failures. After the final
// attempt the last error is wrapped with the attempt count and returned.
func (c *Client) Notify(ctx context.Context, payload MediaPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = c.post(ctx, body)
		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("webhook delivery failed after %d attempts: %w", c.attempts, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
