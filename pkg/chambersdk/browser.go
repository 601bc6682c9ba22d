package chambersdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// ErrLoginFailed is returned by Browser.Login when the server re-renders the
// login form instead of redirecting.
var ErrLoginFailed = errors.New("chambersdk: login failed")

// Page is a fetched HTML page.
type Page struct {
	StatusCode int
	// Path is the final path after redirects.
	Path string
	Body string
}

// Browser drives the HTML interface with its own cookie jar.
type Browser struct {
	client *Client
	http   *http.Client
}

// NewBrowser returns a browser with an empty cookie jar that follows
// redirects.
func (c *Client) NewBrowser() *Browser {
	jar, _ := cookiejar.New(nil)
	return &Browser{
		client: c,
		http: &http.Client{
			Timeout: c.HTTPClient.Timeout,
			Jar:     jar,
		},
	}
}

// Login submits the login form.
func (b *Browser) Login(ctx context.Context, username, password string) (*Page, error) {
	form := url.Values{"username": {username}, "password": {password}}
	page, err := b.do(ctx, http.MethodPost, "/login", form)
	if err != nil {
		return nil, err
	}
	if page.StatusCode != http.StatusOK || page.Path != "/" {
		return page, ErrLoginFailed
	}
	return page, nil
}

// Get fetches path, following redirects.
func (b *Browser) Get(ctx context.Context, path string) (*Page, error) {
	return b.do(ctx, http.MethodGet, path, nil)
}

// Post submits form to path.
func (b *Browser) Post(ctx context.Context, path string, form url.Values) (*Page, error) {
	return b.do(ctx, http.MethodPost, path, form)
}

// Logout ends the browser's session.
func (b *Browser) Logout(ctx context.Context) (*Page, error) {
	return b.Get(ctx, "/logout")
}

// SessionCookie returns the session cookie the server set, if any.
func (b *Browser) SessionCookie() *http.Cookie {
	u, err := url.Parse(b.client.BaseURL)
	if err != nil {
		return nil
	}
	for _, c := range b.http.Jar.Cookies(u) {
		if c.Name == "chambers_session" {
			return c
		}
	}
	return nil
}

func (b *Browser) do(ctx context.Context, method, path string, form url.Values) (*Page, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, b.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "text/html")

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Page{
		StatusCode: resp.StatusCode,
		Path:       resp.Request.URL.Path,
		Body:       string(raw),
	}, nil
}
