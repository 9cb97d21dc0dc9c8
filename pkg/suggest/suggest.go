package suggest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/config"
	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

// MinPromptLength is the shortest prompt the generative endpoint accepts.
const MinPromptLength = 3

// Suggestion is the fixed contract the generative endpoint answers with. The
// endpoint itself is opaque; only this shape is guaranteed.
type Suggestion struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationDate string `json:"publicationDate"`
	Summary         string `json:"summary"`
}

var yearRE = regexp.MustCompile(`\b(\d{4})\b`)

// BookFormValues maps a suggestion into the book-creation form: the title as
// is, and the first four-digit year found in the publication date.
func (s Suggestion) BookFormValues() (title, year string) {
	title = strings.TrimSpace(s.Title)
	if m := yearRE.FindStringSubmatch(s.PublicationDate); m != nil {
		year = m[1]
	}
	return title, year
}

// Suggester answers a free-form prompt with book metadata.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (*Suggestion, error)
}

// Client is the HTTP Suggester.
type Client struct {
	url  string
	key  string
	http *http.Client
	log  logger.Logger
}

func New(cfg config.SuggestConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		url:  cfg.URL,
		key:  cfg.Key,
		http: &http.Client{Timeout: timeout},
		log:  logger.New(),
	}
}

func (c *Client) Suggest(ctx context.Context, prompt string) (*Suggestion, error) {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) < MinPromptLength {
		return nil, errcodes.ValidationError("Prompt must be at least 3 characters")
	}
	if c.url == "" {
		return nil, errcodes.Unavailable("suggest book")
	}

	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Err(err).Error("suggestion endpoint unreachable", logger.Data{"url": c.url})
		return nil, errcodes.Unavailable("suggest book")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errcodes.Upstream("suggest book", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	suggestion := &Suggestion{}
	if err := json.NewDecoder(resp.Body).Decode(suggestion); err != nil {
		return nil, errors.Wrap(err, "failed to decode suggestion")
	}
	suggestion.Summary = StripMarkup(suggestion.Summary)
	return suggestion, nil
}
