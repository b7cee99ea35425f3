package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/payego/payego-cli/internal/client/session"
	"github.com/payego/payego-cli/internal/logging"
)

const maxErrorBody = 1 << 20

// HTTPClient implements Client against the Payego REST API.
//
// It is the single place where the credential is attached and where an
// authorization failure is turned into ErrSessionExpired — screens never
// branch on status codes themselves.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session session.Store
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, store session.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: store,
		log:     log,
	}
}

// errorBody is the uniform failure shape the API uses.
type errorBody struct {
	Message string `json:"message"`
}

type callOpts struct {
	auth  bool
	query url.Values
	// idemKey is attached as an Idempotency-Key header on money-movement
	// calls; one fresh key per submission, never reused on user resubmit.
	idemKey string
}

// call issues one request and decodes the JSON response into out (when
// non-nil). Failures map onto the shared taxonomy:
//
//   - missing token on an authenticated call -> ErrNoSession, nothing sent
//   - no response at all                     -> wrapped ErrUnavailable
//   - 401 on an authenticated call          -> session cleared, ErrSessionExpired
//   - any other non-2xx                     -> *RequestError with server message
//
// call never retries; resubmission is an explicit caller decision.
func (c *HTTPClient) call(ctx context.Context, method, path string, body any, out any, opts callOpts) error {
	var token string
	if opts.auth {
		token = c.session.Token()
		if token == "" {
			return ErrNoSession
		}
	}

	u := c.baseURL + path
	if len(opts.query) > 0 {
		u += "?" + opts.query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if opts.idemKey != "" {
		req.Header.Set("Idempotency-Key", opts.idemKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && opts.auth {
		// 401 is reserved for "session invalid". Clearing here keeps the
		// contract identical for every call site.
		if err := c.session.Clear(); err != nil {
			c.log.Warn(ctx, "clearing session after 401", "error", err)
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(data, &eb)
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode)
		return &RequestError{Status: resp.StatusCode, Message: eb.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out, callOpts{auth: true})
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out, callOpts{auth: true})
}

// postMutation is post plus a fresh idempotency key, for money movement.
func (c *HTTPClient) postMutation(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out, callOpts{auth: true, idemKey: uuid.NewString()})
}

func (c *HTTPClient) postPublic(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out, callOpts{})
}
