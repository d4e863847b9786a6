package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"

	"github.com/mquinnv/gh-hud/internal/model"
)

// requestTimeout bounds every REST call; a wedged request must not
// stall the refresh cycle past one interval.
const requestTimeout = 15 * time.Second

// Client wraps the go-gh REST client, inheriting gh CLI authentication.
// It is not bound to a single repository; the dashboard polls several.
type Client struct {
	rest *ghAPI.RESTClient
}

func NewClient() (*Client, error) {
	rest, err := ghAPI.NewRESTClient(ghAPI.ClientOptions{Timeout: requestTimeout})
	if err != nil {
		return nil, fmt.Errorf("create GitHub client (is gh authenticated?): %w", err)
	}
	return &Client{rest: rest}, nil
}

func repoPath(repo model.Repo, path string) string {
	return fmt.Sprintf("repos/%s/%s/%s", repo.Owner, repo.Name, path)
}

func (c *Client) get(path string, result interface{}) error {
	return promoteRateLimit(c.rest.Get(path, result))
}

func (c *Client) post(path string, body interface{}, result interface{}) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return promoteRateLimit(c.rest.Post(path, reader, result))
}

func (c *Client) put(path string, body interface{}, result interface{}) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	return promoteRateLimit(c.rest.Put(path, reader, result))
}

func encodeBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// RateLimitError is the distinguished rate-limit condition. The upstream
// message is kept verbatim for display; retrying would only worsen it.
type RateLimitError struct {
	Message string
	Reset   time.Time
}

func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%s (resets %s)", e.Message, e.Reset.Local().Format("15:04:05"))
}

// promoteRateLimit turns GitHub's 403/429 rate-limit answers into
// *RateLimitError and passes every other error through untouched.
func promoteRateLimit(err error) error {
	if err == nil {
		return nil
	}
	var httpErr *ghAPI.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	if httpErr.StatusCode != 403 && httpErr.StatusCode != 429 {
		return err
	}
	if !strings.Contains(strings.ToLower(httpErr.Message), "rate limit") {
		return err
	}
	rle := &RateLimitError{Message: httpErr.Message}
	if v := httpErr.Headers.Get("X-RateLimit-Reset"); v != "" {
		if sec, perr := strconv.ParseInt(v, 10, 64); perr == nil {
			rle.Reset = time.Unix(sec, 0)
		}
	}
	return rle
}

// IsNotFound reports whether err is a 404. Repos without Actions enabled
// and deleted runs answer 404; callers treat those as empty, not errors.
func IsNotFound(err error) bool {
	var httpErr *ghAPI.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 404
}
