package kaltura

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultServiceURL is the public Kaltura API endpoint.
const DefaultServiceURL = "https://www.kaltura.com"

// DefaultSessionExpiry is the session length requested when none is
// configured.
const DefaultSessionExpiry = 24 * time.Hour

var ErrMissingCredentials = errors.New("partner id and app token credentials must be set")

// Credentials identifies a partner and one of its app tokens. The token
// value is a secret.
type Credentials struct {
	PartnerID     string
	AppTokenID    string
	AppTokenValue string
}

// APIError is an error response from the Kaltura API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kaltura: %s (%s)", e.Message, e.Code)
}

type Config struct {
	// ServiceURL is the base URL of the API service. Empty means
	// DefaultServiceURL.
	ServiceURL string `mapstructure:"service_url"`
	// HTTPClient overrides the client used for API calls.
	HTTPClient *http.Client
}

// Client is a session-holding client for the Kaltura api_v3 surface. It is
// not safe for concurrent use while a session is being established.
type Client struct {
	serviceURL string
	http       *http.Client
	ks         string
}

func NewClient(cfg Config) *Client {
	serviceURL := DefaultServiceURL
	if cfg.ServiceURL != "" {
		serviceURL = strings.TrimRight(cfg.ServiceURL, "/")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		serviceURL: serviceURL,
		http:       httpClient,
	}
}

type widgetSession struct {
	KS string `json:"ks"`
}

type sessionInfo struct {
	KS string `json:"ks"`
}

// StartSession performs the widget session handshake and upgrades it to an
// app token session, which is then used for every subsequent call. The app
// token hash is the SHA-512 of the widget session ks concatenated with the
// token value.
func (c *Client) StartSession(ctx context.Context, creds Credentials, expiry time.Duration) error {
	if creds.PartnerID == "" || creds.AppTokenID == "" || creds.AppTokenValue == "" {
		return ErrMissingCredentials
	}
	if expiry <= 0 {
		expiry = DefaultSessionExpiry
	}

	var widget widgetSession
	err := c.call(ctx, "session", "startWidgetSession", url.Values{
		"widgetId": {"_" + creds.PartnerID},
	}, &widget)
	if err != nil {
		return fmt.Errorf("starting widget session: %w", err)
	}

	sum := sha512.Sum512([]byte(widget.KS + creds.AppTokenValue))
	tokenHash := hex.EncodeToString(sum[:])

	c.ks = widget.KS

	var session sessionInfo
	err = c.call(ctx, "apptoken", "startSession", url.Values{
		"id":        {creds.AppTokenID},
		"tokenHash": {tokenHash},
		// 0 is the USER session type
		"type":   {"0"},
		"expiry": {strconv.Itoa(int(expiry / time.Second))},
	}, &session)
	if err != nil {
		c.ks = ""
		return fmt.Errorf("starting app token session: %w", err)
	}

	c.ks = session.KS
	log.Debug().Str("partnerId", creds.PartnerID).Msg("kaltura session established")
	return nil
}

// call posts a service/action request and decodes the JSON response into
// out. API exceptions come back with a 200 status and are surfaced as
// *APIError.
func (c *Client) call(ctx context.Context, service, action string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/api_v3/service/%s/action/%s", c.serviceURL, service, action)

	form := url.Values{}
	for key, values := range params {
		form[key] = values
	}
	// format=1 requests JSON responses
	form.Set("format", "1")
	if c.ks != "" && !form.Has("ks") {
		form.Set("ks", c.ks)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected http status %s from %s.%s", resp.Status, service, action)
	}

	var probe struct {
		ObjectType string `json:"objectType"`
		Code       string `json:"code"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err == nil &&
		probe.ObjectType == "KalturaAPIException" {
		return &APIError{Code: probe.Code, Message: probe.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s.%s response: %w", service, action, err)
	}
	return nil
}
