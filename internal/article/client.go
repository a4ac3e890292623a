// Package article implements the optimistic-concurrency save protocol
// spoken by revision-tracked wiki servers.
//
// Saves are submitted as urlencoded PUTs carrying the revision the edit
// was based on; the server is the sole arbiter of conflicts and always
// answers with the now-current canonical snapshot. The client never diffs
// locally; it re-synchronizes to whatever the server returns and only
// decides whether to keep the editing surface open.
package article

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wikied/wikied/internal/form"
	"github.com/wikied/wikied/internal/logging"
	"github.com/wikied/wikied/internal/urls"
)

// DefaultTimeout is the default HTTP request timeout. Generous because an
// in-flight save has no retry; it runs to completion or error.
const DefaultTimeout = 30 * time.Second

// Outcome classifies what a save attempt amounted to.
type Outcome int

const (
	// OutcomeSaved means the server accepted the edit cleanly.
	OutcomeSaved Outcome = iota
	// OutcomeConflict means the edit was based on a stale revision; the
	// result snapshot carries the server's reconciled state.
	OutcomeConflict
	// OutcomeReauthRequired means the request never reached the wiki
	// endpoint and was redirected to a login surface instead.
	OutcomeReauthRequired
	// OutcomeFailed means the attempt failed for transport, status or
	// parse reasons. Never fatal to the session; the user may retry.
	OutcomeFailed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeConflict:
		return "conflict"
	case OutcomeReauthRequired:
		return "reauth-required"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// SaveResult is the classified result of a save attempt. Exactly one of
// the payload fields is meaningful, selected by Outcome.
type SaveResult struct {
	Outcome  Outcome
	Snapshot *Snapshot // OutcomeSaved, OutcomeConflict
	LoginURL string    // OutcomeReauthRequired: where the request ended up
	Reason   string    // OutcomeFailed: user-displayable error text
}

// Client talks to a single wiki server. The cookie jar carries the session
// cookie, standing in for the browser's same-origin credentials.
type Client struct {
	// BaseURL is the server root (e.g. "https://wiki.example.com").
	BaseURL string

	// HTTPClient is the underlying HTTP client. It follows redirects;
	// redirect detection compares the final URL against the requested one.
	HTTPClient *http.Client
}

// NewClient creates a client for the given server root.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
	}
}

// SetTimeout sets the HTTP request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Fetch retrieves the current snapshot for a slug using JSON content
// negotiation. A 404 yields a new-article snapshot rather than an error,
// since the edit flow for a missing article is to create it. A redirect to
// a non-JSON page is classified as a login wall.
func (c *Client) Fetch(ctx context.Context, slug string) (*Snapshot, error) {
	endpoint := urls.Article(c.BaseURL, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if wasRedirected(resp, endpoint) && !isJSON(resp) {
		return nil, NewReauthError(resp.Request.URL.String())
	}

	if resp.StatusCode == http.StatusNotFound {
		return NewArticle(slug), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	snap, err := ParseSnapshot(body)
	if err != nil {
		return nil, err
	}

	logging.Debug("fetched article",
		zap.String("article", snap.String()),
		zap.String("endpoint", endpoint),
	)
	return snap, nil
}

// Save submits the form to the article endpoint for slug and classifies
// the response. Nothing is thrown past this boundary: every transport,
// status and parse failure comes back as OutcomeFailed with displayable
// text, so the caller only ever deals in outcomes.
//
// Classification order:
//  1. redirected and the final content-type is not JSON: treated as a
//     session-expiry login wall. This is a heuristic, not a session check;
//     a non-JSON redirect from a proxy error page is misclassified, at
//     the cost of an unnecessary login prompt.
//  2. status outside the success range: failed.
//  3. otherwise the body is the canonical snapshot plus a conflict flag.
func (c *Client) Save(ctx context.Context, slug string, f *form.Form) *SaveResult {
	endpoint := urls.Article(c.BaseURL, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(f.Serialize()))
	if err != nil {
		return failed(NewNetworkError("failed to create PUT request", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return failed(NewNetworkError("PUT request failed", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if wasRedirected(resp, endpoint) && !isJSON(resp) {
		loginURL := resp.Request.URL.String()
		logging.Warn("save redirected to login wall", zap.String("login_url", loginURL))
		return &SaveResult{Outcome: OutcomeReauthRequired, LoginURL: loginURL}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failed(NewStatusError(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(NewNetworkError("failed to read response body", err))
	}

	snap, err := ParseSnapshot(body)
	if err != nil {
		return failed(err.(*ProtocolError))
	}

	outcome := OutcomeSaved
	if snap.Conflict {
		outcome = OutcomeConflict
	}

	logging.Info("save completed",
		zap.String("outcome", outcome.String()),
		zap.String("article", snap.String()),
	)
	return &SaveResult{Outcome: outcome, Snapshot: snap}
}

// failed wraps a classified error into a Failed result carrying its
// displayable message.
func failed(err *ProtocolError) *SaveResult {
	logging.Warn("save failed", zap.String("reason", err.Message))
	return &SaveResult{Outcome: OutcomeFailed, Reason: err.Message}
}

// wasRedirected reports whether the response came from somewhere other
// than the requested URL. http.Client rewrites resp.Request to the final
// request of the redirect chain, so comparing URLs recovers the
// information a browser exposes as response.redirected.
func wasRedirected(resp *http.Response, requested string) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}
	return resp.Request.URL.String() != requested
}

// isJSON reports whether the response declares a JSON content type.
func isJSON(resp *http.Response) bool {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/json"
}
