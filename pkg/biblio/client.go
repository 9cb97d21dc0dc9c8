// Package biblio is the transport client for the upstream library-management
// REST API. Each entity gets five thin calls (list, retrieve, create, update,
// delete) that return raw DTOs; mapping to display models happens in the
// caller via pkg/models.
//
// The upstream has two wire quirks, both isolated here: creates encode their
// fields positionally into the URL path (absent optional fields become the
// literal token "null"), and updates pass only the present fields as query
// parameters.
package biblio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.New(),
	}
}

// nullToken is what the upstream expects in a positional path segment when an
// optional field has no value. It is a quirk of this specific backend, not a
// general pattern; keep it behind nullSegment.
const nullToken = "null"

// nullSegment encodes an optional positional field, mapping the empty value to
// the upstream's "null" token.
func nullSegment(value string) string {
	if strings.TrimSpace(value) == "" {
		return nullToken
	}
	return value
}

// joinSegments builds a path from the entity root plus URL-escaped positional
// segments.
func joinSegments(root string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, root)
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

func idPath(root string, id int) string {
	return root + "/" + strconv.Itoa(id)
}

func (c *Client) get(ctx context.Context, path string, out interface{}, operation string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, operation)
}

func (c *Client) post(ctx context.Context, path string, out interface{}, operation string) error {
	return c.do(ctx, http.MethodPost, path, nil, out, operation)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, out interface{}, operation string) error {
	return c.do(ctx, http.MethodPut, path, query, out, operation)
}

func (c *Client) delete(ctx context.Context, path string, operation string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, operation)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}, operation string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Err(err).Warn("upstream unreachable", logger.Data{"operation": operation, "url": target})
		return errcodes.Unavailable(operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errcodes.Upstream(operation, resp.StatusCode, upstreamMessage(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", operation)
	}
	return nil
}

// upstreamMessage makes a best effort at pulling a human-readable message out
// of an error body. The upstream is not consistent about its envelope.
func upstreamMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Title   string `json:"title"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case envelope.Error.Message != "":
			return envelope.Error.Message
		case envelope.Title != "":
			return envelope.Title
		}
	}

	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}

// Query-building helpers for partial updates. Only fields whose pointer is
// non-nil end up in the query string.

func setString(q url.Values, key string, value *string) {
	if value != nil {
		q.Set(key, *value)
	}
}

func setInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

// setDate sets an optional date parameter. An explicitly empty value means
// "clear this date" and is sent as the upstream's null token.
func setDate(q url.Values, key string, value *string) {
	if value == nil {
		return
	}
	if strings.TrimSpace(*value) == "" {
		q.Set(key, nullToken)
		return
	}
	q.Set(key, *value)
}
