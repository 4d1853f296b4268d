package bestiary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// AttemptHook is called after every failed attempt for a username
type AttemptHook func(username string, attempt, maxAttempts int, err error)

type Client struct {
	baseURL      string
	retry        config.RetryConfig
	http         *resty.Client
	onFailure    AttemptHook
	apiCallCount int64
	apiCallMutex sync.Mutex
}

// NewClient creates a profile client for baseURL, which must end where the
// encoded input parameter is appended.
func NewClient(baseURL string, retry config.RetryConfig) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(retry.Timeout)
	httpClient.SetHeader("Accept", "application/json")

	return &Client{
		baseURL: baseURL,
		retry:   retry,
		http:    httpClient,
	}
}

// SetAttemptHook registers a callback for failed attempts
func (c *Client) SetAttemptHook(hook AttemptHook) {
	c.onFailure = hook
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// BuildProfileURL appends the URL-encoded batch input {"0":{"json":username}}
// to baseURL.
func BuildProfileURL(baseURL, username string) string {
	var input bytes.Buffer
	encoder := json.NewEncoder(&input)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(map[string]map[string]string{
		"0": {"json": username},
	})
	// spaces must go out as %20; the route does not decode '+'
	escaped := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(input.String())), "+", "%20")
	return baseURL + escaped
}

// FetchProfile fetches the profile for username with bounded retries and
// waits the configured request delay after a successful response.
func (c *Client) FetchProfile(ctx context.Context, username string) (*app.Profile, error) {
	profileURL := BuildProfileURL(c.baseURL, username)

	log.Debug().Str("username", username).Str("url", profileURL).Msg("Fetching profile")

	profile, attempts, err := config.Retry(ctx, c.retry, func(ctx context.Context) (*app.Profile, error) {
		profile, err := c.fetchOnce(ctx, profileURL)
		if errors.Is(err, ErrProfileNotFound) {
			return nil, config.Permanent(err)
		}
		return profile, err
	}, func(attempt int, err error) {
		log.Warn().
			Err(err).
			Str("username", username).
			Int("attempt", attempt).
			Int("max_attempts", c.retry.MaxAttempts).
			Msg("Profile fetch attempt failed")
		if c.onFailure != nil {
			c.onFailure(username, attempt, c.retry.MaxAttempts, err)
		}
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) || ctx.Err() != nil {
			return nil, err
		}
		return nil, &FetchError{Username: username, Attempts: attempts, Err: err}
	}

	if err := config.Sleep(ctx, c.retry.RequestDelay); err != nil {
		return nil, err
	}

	return profile, nil
}

// fetchOnce performs a single GET and decodes the response
func (c *Client) fetchOnce(ctx context.Context, profileURL string) (*app.Profile, error) {
	resp, err := c.http.R().SetContext(ctx).Get(profileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	c.IncrementAPICall()

	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: snippet(resp.Body())}
	}

	return DecodeProfile(resp.Body())
}

// DecodeProfile extracts the profile from a batched tRPC response body.
func DecodeProfile(body []byte) (*app.Profile, error) {
	var response app.ProfileResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode profile response (%s): %w", snippet(body), err)
	}

	if len(response) == 0 || response[0].Result == nil || response[0].Result.Data == nil ||
		len(response[0].Result.Data.JSON) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, snippet(body))
	}

	raw := bytes.TrimSpace(response[0].Result.Data.JSON)
	if bytes.Equal(raw, []byte("null")) {
		return nil, ErrProfileNotFound
	}

	var profile app.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		if maps, ok := fields["maps"]; ok && bytes.Equal(bytes.TrimSpace(maps), []byte("null")) {
			profile.NullMaps = true
		}
	}

	return &profile, nil
}
