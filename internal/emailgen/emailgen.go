package emailgen

import (
	"context"
	"net/http"
	"strings"
)

// DefaultEndpoint is the hosted generation service.
const DefaultEndpoint = "https://backend-woun.onrender.com/generate-email"

// Config describes how to build a generation client.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
}

// Client turns a job posting URL into an email draft.
type Client interface {
	Generate(ctx context.Context, url string) (string, error)
	Name() string
}

// New builds an HTTP client for cfg.Endpoint, or DefaultEndpoint when unset.
func New(cfg Config) Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &httpClient{
		endpoint: endpoint,
		client:   pickHTTPClient(cfg.HTTPClient),
	}
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// No client timeout: the service can take well over a minute on a cold start,
	// and the stall notice in the UI is not an abort.
	return &http.Client{}
}
