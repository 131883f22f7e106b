// Package plex is the target adapter: it reads a Plex library snapshot and
// pushes play progress back to it.
package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vmunix/syncerr/internal/media"
)

const (
	// DefaultRequestInterval is the minimum delay between traversal requests.
	DefaultRequestInterval = 200 * time.Millisecond

	libraryIdentifier = "com.plexapp.plugins.library"
	productName       = "syncerr"
)

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	limiter     *rate.Limiter
	concurrency int
	log         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRequestInterval sets the pacing between traversal requests.
// Zero disables pacing.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithConcurrency sets how many shows are traversed at once.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter:     rate.NewLimiter(rate.Every(DefaultRequestInterval), 1),
		concurrency: 1,
		log:         log.With("component", "plex"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Identity holds Plex server identity information.
type Identity struct {
	Name    string
	Version string
}

// identityResponse is the XML response from root endpoint.
type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

// Section represents a Plex library section.
type Section struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// Kind classifies a section as movie, show or other.
func (s Section) Kind() Kind {
	switch s.Type {
	case "movie":
		return KindMovie
	case "show":
		return KindShow
	default:
		return KindOther
	}
}

// Kind is the media kind of a library section.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
	KindOther Kind = "other"
)

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name  `xml:"MediaContainer"`
	Sections []Section `xml:"Directory"`
}

// Item is a movie, show, season or episode entry.
type Item struct {
	RatingKey string // Plex's unique identifier for the item
	Key       string
	Title     string
	Type      string
	Index     int
	Duration  int64 // milliseconds
}

// itemXML is the XML representation of a Plex item.
type itemXML struct {
	RatingKey string `xml:"ratingKey,attr"`
	Key       string `xml:"key,attr"`
	Title     string `xml:"title,attr"`
	Type      string `xml:"type,attr"`
	Index     int    `xml:"index,attr"`
	Duration  int64  `xml:"duration,attr"`
}

// metadataResponse is the XML response from item and children listings.
type metadataResponse struct {
	XMLName     xml.Name  `xml:"MediaContainer"`
	Videos      []itemXML `xml:"Video"`     // Movies, episodes
	Directories []itemXML `xml:"Directory"` // TV shows, seasons
}

// Identity returns the Plex server name and version. It doubles as the
// token check before a sync run.
func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	var result identityResponse
	if err := c.get(ctx, "/", nil, &result); err != nil {
		return nil, err
	}
	return &Identity{
		Name:    result.FriendlyName,
		Version: result.Version,
	}, nil
}

// Ping verifies the server is reachable and accepts the token.
func (c *Client) Ping(ctx context.Context) error {
	identity, err := c.Identity(ctx)
	if err != nil {
		return err
	}
	c.log.Info("connected to plex", "server", identity.Name, "version", identity.Version)
	return nil
}

// Libraries returns all library sections.
func (c *Client) Libraries(ctx context.Context) ([]Section, error) {
	var result sectionsResponse
	if err := c.get(ctx, "/library/sections", nil, &result); err != nil {
		return nil, err
	}
	return result.Sections, nil
}

// Items returns all items in a library section. For show sections each entry
// is a series container.
func (c *Client) Items(ctx context.Context, sectionKey string) ([]Item, error) {
	var result metadataResponse
	if err := c.get(ctx, "/library/sections/"+url.PathEscape(sectionKey)+"/all", nil, &result); err != nil {
		return nil, err
	}
	return c.collect(result), nil
}

// Children returns the child containers of a series or season.
// Calls are paced by the client's limiter.
func (c *Client) Children(ctx context.Context, ratingKey string) ([]Item, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	var result metadataResponse
	if err := c.get(ctx, "/library/metadata/"+url.PathEscape(ratingKey)+"/children", nil, &result); err != nil {
		return nil, err
	}
	return c.collect(result), nil
}

// collect combines videos and directories, dropping entries that cannot be
// matched or updated.
func (c *Client) collect(result metadataResponse) []Item {
	all := make([]itemXML, 0, len(result.Videos)+len(result.Directories))
	all = append(all, result.Videos...)
	all = append(all, result.Directories...)

	items := make([]Item, 0, len(all))
	for _, it := range all {
		if strings.HasSuffix(it.Key, "/allLeaves") {
			c.log.Debug("skipping all-episodes entry", "title", it.Title, "key", it.Key)
			continue
		}
		if it.RatingKey == "" || it.Title == "" {
			c.log.Warn("dropping plex entry",
				"error", media.ErrMalformedRecord,
				"title", it.Title,
				"key", it.Key)
			continue
		}
		items = append(items, Item{
			RatingKey: it.RatingKey,
			Key:       it.Key,
			Title:     it.Title,
			Type:      it.Type,
			Index:     it.Index,
			Duration:  it.Duration,
		})
	}
	return items
}

// Scrobble marks an item as fully played.
func (c *Client) Scrobble(ctx context.Context, ratingKey string) error {
	return c.mark(ctx, "/:/scrobble", url.Values{"key": {ratingKey}})
}

// Unscrobble marks an item as never played.
func (c *Client) Unscrobble(ctx context.Context, ratingKey string) error {
	return c.mark(ctx, "/:/unscrobble", url.Values{"key": {ratingKey}})
}

// SetProgress records a partial playback position in milliseconds.
func (c *Client) SetProgress(ctx context.Context, ratingKey string, position int64, state string) error {
	return c.mark(ctx, "/:/progress", url.Values{
		"key":   {ratingKey},
		"time":  {strconv.FormatInt(position, 10)},
		"state": {state},
	})
}

func (c *Client) mark(ctx context.Context, path string, params url.Values) error {
	params.Set("identifier", libraryIdentifier)

	resp, err := c.do(ctx, path, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Debug("progress call", "path", path, "key", params.Get("key"))
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.do(ctx, path, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", media.ErrUpstream, path, err)
	}
	return nil
}

// do performs an authenticated GET and maps the status to the error taxonomy.
// The caller owns the body on success.
func (c *Client) do(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("X-Plex-Product", productName)
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %v", media.ErrUpstream, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: plex rejected token", media.ErrAuthentication)
	case resp.StatusCode != http.StatusOK:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: unexpected status: %d", media.ErrUpstream, path, resp.StatusCode)
	}

	c.log.Debug("plex request", "path", path, "duration_ms", time.Since(start).Milliseconds())
	return resp, nil
}
