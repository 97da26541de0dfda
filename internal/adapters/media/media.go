// Package media talks to the external media provider. The service only
// stores and releases opaque references; bytes never cross this boundary.
package media

import (
	"context"
	"crypto/sha1" //nolint:gosec // provider-mandated request signature, not a security primitive
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pranayjha5666/harsha4/pkg/logger"
)

// Releaser releases externally stored media objects by reference.
type Releaser interface {
	// Release instructs the provider to drop the object behind ref.
	Release(ctx context.Context, ref string) error
}

// Default client configuration.
const (
	defaultBaseURL = "https://api.cloudinary.com/v1_1"
	defaultTimeout = 15 * time.Second
)

// Client is a release-only client for the media provider's admin API.
// When credentials are missing the client is disabled and Release becomes
// a logged no-op, so a dev setup without a provider account still works.
type Client struct {
	baseURL   string
	cloud     string
	apiKey    string
	apiSecret string
	timeout   time.Duration

	httpClient *http.Client
	logger     logger.Logger
	now        func() time.Time
}

// NewClient builds a Client from options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get()
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Enabled reports whether the client has credentials to act with.
func (c *Client) Enabled() bool {
	return c.cloud != "" && c.apiKey != "" && c.apiSecret != ""
}

// Release asks the provider to destroy the object behind ref.
func (c *Client) Release(ctx context.Context, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return ErrEmptyReference
	}
	if !c.Enabled() {
		c.logger.Debug(ctx, "media client disabled; skipping release",
			logger.String("ref", ref),
		)
		return nil
	}

	ts := strconv.FormatInt(c.now().Unix(), 10)
	form := url.Values{}
	form.Set("public_id", ref)
	form.Set("timestamp", ts)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(ref, ts))

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloud)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: provider returned %d", ErrReleaseFailed, resp.StatusCode)
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}
	if body.Result != "ok" && body.Result != "not found" {
		return fmt.Errorf("%w: provider result %q", ErrReleaseFailed, body.Result)
	}
	return nil
}

// sign computes the provider's request signature over the sorted
// parameters plus the API secret.
func (c *Client) sign(ref, ts string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%s%s", ref, ts, c.apiSecret)
	sum := sha1.Sum([]byte(payload)) //nolint:gosec // see package note on signatures
	return hex.EncodeToString(sum[:])
}
