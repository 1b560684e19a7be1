package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ProviderDispatcher sends mail through the hosted transactional-email
// API: one bearer-auth JSON POST per message, no retries, no queueing.
type ProviderDispatcher struct {
	url    string
	apiKey string
	client *http.Client
}

func NewProviderDispatcher(url, apiKey string) *ProviderDispatcher {
	return &ProviderDispatcher{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *ProviderDispatcher) Send(ctx context.Context, msg Message) error {
	if d.apiKey == "" {
		return ErrMissingAPIKey
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &UpstreamError{
		Status:  resp.StatusCode,
		Message: extractMessage(resp.Body),
	}
}

// extractMessage pulls the provider's error message out of the response
// body, falling back to the raw text.
func extractMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(bytes.TrimSpace(raw))
}
