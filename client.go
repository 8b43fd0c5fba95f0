package flagkit

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"net/http"
	"time"
)

// ClientOptions represents the options used by Client.
type ClientOptions struct {
	// Timeout for the whole request, body included. Zero means none.
	Timeout time.Duration `yaml:"timeout"`

	// MaxBodySize caps how much of a successful body is returned.
	MaxBodySize int64 `yaml:"max_body_size"`

	// FollowRedirects lets the transport chase 3xx responses.
	FollowRedirects bool `yaml:"follow_redirects"`
}

var DefaultClientOptions = &ClientOptions{
	Timeout:         10 * time.Second,
	MaxBodySize:     1 << 20,
	FollowRedirects: true,
}

// Client performs single GETs and describes the outcome as text.
type Client struct {
	http        *http.Client
	maxBodySize int64
}

func NewClient(options *ClientOptions) *Client {
	if options == nil {
		options = DefaultClientOptions
	}
	hc := &http.Client{Timeout: options.Timeout}
	if !options.FollowRedirects {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	maxBody := options.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultClientOptions.MaxBodySize
	}
	return &Client{http: hc, maxBodySize: maxBody}
}

// Close releases idle keep-alive connections held by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Fetch issues a GET to url. Failures are reported in the returned text,
// never as an error.
func (c *Client) Fetch(ctx context.Context, url string) string {
	class, status, body, err := c.get(ctx, url)
	if err != nil {
		log.Warnf("fetch %s: %s", url, err)
		return "Network error: " + errors.Cause(err).Error()
	}
	log.WithFields(log.Fields{"url": url, "status": status, "class": class}).Debug("fetched")
	if class == StatusSuccess {
		return class.String() + ": " + body
	}
	return class.String() + ": " + status
}

func (c *Client) get(ctx context.Context, url string) (StatusClass, string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", "", errors.Wrap(err, "new request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", "", errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	class := CategorizeStatus(resp.StatusCode)
	if class != StatusSuccess {
		_, _ = io.Copy(io.Discard, resp.Body)
		return class, resp.Status, "", nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return 0, "", "", errors.Wrap(err, "read body")
	}
	return class, resp.Status, string(body), nil
}
