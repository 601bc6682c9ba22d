package chambersdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// RequestToken posts credentials to /v1/token.
func (c *Client) RequestToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/token",
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}
