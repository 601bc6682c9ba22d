package chambersdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a chambers server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Authenticate exchanges credentials for an API session.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	tok, err := c.RequestToken(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, username, password, tok), nil
}
