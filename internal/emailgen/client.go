package emailgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxResponseBytes bounds how much of a response body is read into memory.
const maxResponseBytes = 1 << 20

type httpClient struct {
	endpoint string
	client   *http.Client
}

type generateRequest struct {
	URL string `json:"url"`
}

type generateResponse struct {
	Email string `json:"email"`
}

func (c *httpClient) Name() string {
	return fmt.Sprintf("generator (%s)", c.endpoint)
}

func (c *httpClient) Generate(ctx context.Context, url string) (string, error) {
	buf, err := json.Marshal(generateRequest{URL: url})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode >= 400 {
		return "", &ServiceError{Status: resp.StatusCode, Detail: parseDetail(body)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ServiceError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if strings.TrimSpace(parsed.Email) == "" {
		return "", &ServiceError{Status: resp.StatusCode, Err: ErrEmptyEmail}
	}
	return parsed.Email, nil
}

// parseDetail extracts the "detail" field of an error payload. The service
// sends either a plain string or, for request validation failures, a list of
// objects carrying a "msg".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}
