package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// apiError is a non-2xx answer from an LLM API.
type apiError struct {
	backend string
	status  int
	body    []byte
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.backend, e.status, string(e.body))
}

// postJSON sends payload to url and decodes a 200 answer into out.
func postJSON(
	ctx context.Context,
	client *http.Client,
	backend, url string,
	headers map[string]string,
	payload, out any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calling %s: %w", backend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &apiError{backend: backend, status: resp.StatusCode, body: respBody}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", backend, err)
	}
	return nil
}
