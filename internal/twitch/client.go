package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/onair/internal/live"
)

// Error kinds returned by the client. Callers branch with errors.Is.
var (
	// ErrAuth means no usable access token could be obtained.
	ErrAuth = errors.New("twitch auth failed")
	// ErrTransport means the status request did not complete.
	ErrTransport = errors.New("twitch request failed")
	// ErrMalformed means the response did not carry the expected fields.
	ErrMalformed = errors.New("twitch response malformed")
)

// StatusFetcher defines the interface for fetching live status.
// This interface is implemented by *Client and can be used for testing.
type StatusFetcher interface {
	Authenticate(ctx context.Context) (Token, error)
	LiveStatus(ctx context.Context, token Token, names []string) (live.Set, error)
}

// Ensure Client implements StatusFetcher at compile time.
var _ StatusFetcher = (*Client)(nil)

// Token is an app access token. It carries no expiry; it is fetched once.
type Token string

// Options configure a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	AuthURL      string // empty uses the Twitch token endpoint
	StreamsURL   string // empty uses the Helix streams endpoint
	HTTPClient   *http.Client
}

// Client talks to the Twitch token and Helix streams endpoints.
type Client struct {
	authURL      string
	streamsURL   string
	clientID     string
	clientSecret string
	http         *http.Client
	userAgent    string
}

const (
	DefaultAuthURL    = "https://id.twitch.tv/oauth2/token"
	DefaultStreamsURL = "https://api.twitch.tv/helix/streams"
	defaultUserAgent  = "onair/0.1"
	requestTimeout    = 10 * time.Second
)

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.ClientID) == "" {
		return nil, fmt.Errorf("client id is required")
	}
	authURL, err := normalizeURL(opts.AuthURL, DefaultAuthURL)
	if err != nil {
		return nil, err
	}
	streamsURL, err := normalizeURL(opts.StreamsURL, DefaultStreamsURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		authURL:      authURL,
		streamsURL:   streamsURL,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		http:         httpClient,
		userAgent:    defaultUserAgent,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate runs the client-credentials grant. Any failure wraps ErrAuth;
// retry policy is the caller's decision.
func (c *Client) Authenticate(ctx context.Context) (Token, error) {
	if c == nil {
		return "", fmt.Errorf("%w: client is nil", ErrAuth)
	}
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "client_credentials")

	log.Debug().Str("url", c.authURL).Str("client_id", c.clientID).Msg("requesting access token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	var payload tokenResponse
	if err := c.do(req, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: response has no access_token", ErrAuth)
	}
	return Token(payload.AccessToken), nil
}

type streamsResponse struct {
	Data json.RawMessage `json:"data"`
}

type stream struct {
	UserName *string `json:"user_name"`
}

// LiveStatus returns the subset of names that are broadcasting. All names go
// into one request. An empty names list returns an empty set without touching
// the network. Failures never return partial data.
func (c *Client) LiveStatus(ctx context.Context, token Token, names []string) (live.Set, error) {
	if len(names) == 0 {
		return live.Set{}, nil
	}
	if c == nil {
		return live.Set{}, fmt.Errorf("%w: client is nil", ErrTransport)
	}

	reqURL := c.streamsURL + loginQuery(names)
	log.Debug().Str("url", reqURL).Str("client_id", c.clientID).Msg("requesting stream status")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return live.Set{}, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	var payload streamsResponse
	if err := c.do(req, &payload); err != nil {
		if errors.Is(err, errDecode) {
			return live.Set{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return live.Set{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return parseStreams(payload)
}

func parseStreams(payload streamsResponse) (live.Set, error) {
	if len(payload.Data) == 0 {
		return live.Set{}, fmt.Errorf("%w: response has no data field", ErrMalformed)
	}
	var rows []stream
	if err := json.Unmarshal(payload.Data, &rows); err != nil {
		return live.Set{}, fmt.Errorf("%w: decode data: %v", ErrMalformed, err)
	}
	names := make([]string, 0, len(rows))
	for i, row := range rows {
		if row.UserName == nil {
			return live.Set{}, fmt.Errorf("%w: data[%d] has no user_name", ErrMalformed, i)
		}
		names = append(names, *row.UserName)
	}
	return live.NewSet(names...), nil
}

// loginQuery builds "?&user_login=a&user_login=b". The leading "&" is kept;
// Helix ignores the empty parameter.
func loginQuery(names []string) string {
	var b strings.Builder
	b.WriteString("?")
	for _, name := range names {
		b.WriteString("&user_login=")
		b.WriteString(url.QueryEscape(name))
	}
	return b.String()
}

var errDecode = errors.New("decode response")

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s returned status %d", req.URL.Path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	return nil
}

func normalizeURL(raw, fallback string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url %q must be absolute", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
