// Package delivery builds the outbound payloads and performs the one-shot
// HTTP POSTs to the monitoring service. There is no retry, no backoff and
// no connection reuse across invocations: a failed POST is classified,
// reported once by the caller, and dropped.
package delivery

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// requestTimeout bounds each POST end to end, matching the monitor's
// server-side expectation.
const requestTimeout = 30 * time.Second

// StatusError is an HTTP-level failure: the server answered, but with an
// error status. The body is captured for the diagnostic.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Client posts JSON payloads with the fixed header set every variant uses:
// JSON content type, a variant-identifying User-Agent and, when a token is
// configured, bearer authorization.
type Client struct {
	http      *http.Client
	token     string
	userAgent string
	log       zerolog.Logger
}

// NewClient builds a Client. tlsConfig may be nil; variants that resolve a
// trust tier pass the resolved configuration, the rest use Go's defaults.
// Keep-alives are off: each POST gets its own connection.
func NewClient(token, userAgent string, tlsConfig *tls.Config, log zerolog.Logger) *Client {
	transport := &http.Transport{DisableKeepAlives: true}
	if tlsConfig != nil {
		transport.TLSClientConfig = tlsConfig
	}
	hc := &http.Client{Timeout: requestTimeout, Transport: transport}
	return &Client{http: hc, token: token, userAgent: userAgent, log: log}
}

// Post marshals payload and POSTs it to url. Transport failures (connection
// refused, TLS, timeout) come back as wrapped errors; error statuses come
// back as *StatusError with the response body attached. A 2xx/3xx response
// returns nil.
func (c *Client) Post(url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("url", url).Int("bytes", len(body)).Msg("posting payload")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	c.log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("payload accepted")
	return nil
}
