package sigilsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a client for the Sigil OpenPGP service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token authenticates requests when the service is deployed with an
	// API token. Empty means no token header is sent.
	Token string
}

// NewClient creates a service client for the given base URL.
// The generous timeout covers RSA-4096 key generation, which can take
// several seconds on slow hardware.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
