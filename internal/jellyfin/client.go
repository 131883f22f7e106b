// Package jellyfin is the source adapter: it authenticates against a Jellyfin
// server and turns its now-playing sessions and played items into the
// normalized media model.
package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/syncerr/internal/media"
)

const (
	// ActiveWithin is the recency window for a session to count as now playing.
	ActiveWithin = 960 * time.Second

	clientName = "syncerr"
	deviceName = "syncerr-api"
	pageSize   = 100
)

// Client is a Jellyfin API client authenticated by user name and password.
type Client struct {
	baseURL    string
	username   string
	password   string
	deviceID   string
	version    string
	httpClient *http.Client
	log        *slog.Logger

	userID string
	token  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDeviceID sets the device id reported to the server.
func WithDeviceID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.deviceID = id
		}
	}
}

// WithVersion sets the client version reported to the server.
func WithVersion(v string) Option {
	return func(c *Client) {
		c.version = v
	}
}

// NewClient creates a new Jellyfin client. Call Authenticate before any
// other method.
func NewClient(baseURL, username, password string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		password: password,
		deviceID: uuid.NewString(),
		version:  "1.0.0",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With("component", "jellyfin"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authorization builds the X-Emby-Authorization header value. Values are
// case-sensitive on the server side.
func (c *Client) authorization() string {
	h := fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		clientName, deviceName, c.deviceID, c.version)
	if c.token != "" {
		h += fmt.Sprintf(`, Token="%s"`, c.token)
	}
	return h
}

// UserID returns the authenticated user's id.
func (c *Client) UserID() string {
	return c.userID
}

// Authenticate logs in by name and stores the access token and user id.
func (c *Client) Authenticate(ctx context.Context) error {
	body, err := json.Marshal(authenticateRequest{Username: c.username, Pw: c.password})
	if err != nil {
		return fmt.Errorf("marshal login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Users/AuthenticateByName", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Emby-Authorization", c.authorization())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: login request: %v", media.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: jellyfin rejected credentials for %q", media.ErrAuthentication, c.username)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: login failed: %s", media.ErrUpstream, resp.Status)
	}

	var auth authenticateResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return fmt.Errorf("%w: decode login response: %v", media.ErrUpstream, err)
	}
	if auth.AccessToken == "" || auth.User.ID == "" {
		return fmt.Errorf("%w: login response missing token or user", media.ErrAuthentication)
	}

	c.token = auth.AccessToken
	c.userID = auth.User.ID
	c.log.Debug("authenticated with jellyfin", "user_id", c.userID)
	return nil
}

// ActiveSessions returns the ids of items played within ActiveWithin, in
// session order.
func (c *Client) ActiveSessions(ctx context.Context) ([]string, error) {
	params := url.Values{"activeWithinSeconds": {strconv.Itoa(int(ActiveWithin.Seconds()))}}

	var sessions []sessionInfo
	if err := c.get(ctx, "/Sessions", params, &sessions); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.NowPlayingItem == nil {
			continue
		}
		if s.NowPlayingItem.ID == "" {
			c.log.Warn("dropping session", "error", media.ErrMalformedRecord, "reason", "now playing item has no Id")
			continue
		}
		ids = append(ids, s.NowPlayingItem.ID)
	}

	c.log.Info("found items being played", "count", len(ids))
	return ids, nil
}

// ItemDetail fetches one item as seen by the authenticated user.
func (c *Client) ItemDetail(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.get(ctx, "/Users/"+url.PathEscape(c.userID)+"/Items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Hierarchy builds a series holding one season holding one episode from
// three detail fetches.
func (c *Client) Hierarchy(ctx context.Context, seriesID, seasonID, episodeID string) (*media.Series, error) {
	series, err := c.ItemDetail(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", seriesID, err)
	}
	season, err := c.ItemDetail(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("fetch season %s: %w", seasonID, err)
	}
	episode, err := c.ItemDetail(ctx, episodeID)
	if err != nil {
		return nil, fmt.Errorf("fetch episode %s: %w", episodeID, err)
	}

	for _, it := range []*Item{series, season} {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}
	if err := episode.validatePlayable(); err != nil {
		return nil, err
	}

	return &media.Series{
		Name: series.Name,
		ID:   series.ID,
		Seasons: []*media.Season{{
			Name:     season.Name,
			ID:       season.ID,
			Index:    season.IndexNumber,
			Episodes: []*media.Episode{toEpisode(episode)},
		}},
	}, nil
}

// NowPlaying returns the normalized items of all active sessions with their
// percentage resolved. Records that fail validation are dropped with a
// warning; transport and status failures abort.
func (c *Client) NowPlaying(ctx context.Context) ([]media.Playable, error) {
	ids, err := c.ActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	var items []media.Playable
	for _, id := range ids {
		p, err := c.playable(ctx, id)
		if err != nil {
			if errors.Is(err, media.ErrMalformedRecord) || errors.Is(err, media.ErrUnknownCategory) {
				c.log.Warn("dropping now playing item", "item_id", id, "error", err)
				continue
			}
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (c *Client) playable(ctx context.Context, id string) (media.Playable, error) {
	detail, err := c.ItemDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := detail.validatePlayable(); err != nil {
		return nil, err
	}

	switch detail.Type {
	case TypeMovie:
		movie := toMovie(detail)
		pct := movie.Details.Resolve()
		c.log.Info("currently playing",
			"movie", movie.Name,
			"percentage", fmt.Sprintf("%0.3f", pct))
		return movie, nil
	case TypeEpisode:
		series, err := c.Hierarchy(ctx, detail.SeriesID, detail.SeasonID, detail.ID)
		if err != nil {
			return nil, err
		}
		season, episode, _ := series.Current()
		pct := episode.Details.Resolve()
		c.log.Info("currently playing",
			"series", series.Name,
			"season", season.Name,
			"episode", episode.Name,
			"percentage", fmt.Sprintf("%0.3f", pct))
		return series, nil
	default:
		return nil, fmt.Errorf("%w: %q", media.ErrUnknownCategory, detail.Type)
	}
}

// Played returns every movie and episode the user has fully played. Episodes
// carry their series and season names from the listing, so no further
// fetches are made.
func (c *Client) Played(ctx context.Context) ([]media.Playable, error) {
	var items []media.Playable
	for start := 0; ; start += pageSize {
		params := url.Values{
			"IncludeItemTypes": {TypeMovie + "," + TypeEpisode},
			"Recursive":        {"true"},
			"IsPlayed":         {"true"},
			"Limit":            {strconv.Itoa(pageSize)},
			"StartIndex":       {strconv.Itoa(start)},
		}

		var page itemsResponse
		if err := c.get(ctx, "/Users/"+url.PathEscape(c.userID)+"/Items", params, &page); err != nil {
			return nil, err
		}

		for i := range page.Items {
			it := &page.Items[i]
			if err := it.validatePlayable(); err != nil {
				c.log.Warn("dropping played item", "item_id", it.ID, "error", err)
				continue
			}
			switch it.Type {
			case TypeMovie:
				movie := toMovie(it)
				movie.Details.Resolve()
				items = append(items, movie)
			case TypeEpisode:
				series := flatSeries(it)
				_, episode, _ := series.Current()
				episode.Details.Resolve()
				items = append(items, series)
			}
		}

		if len(page.Items) < pageSize {
			break
		}
		if page.TotalRecordCount > 0 && start+len(page.Items) >= page.TotalRecordCount {
			break
		}
	}

	c.log.Info("found played items", "count", len(items))
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Emby-Authorization", c.authorization())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request %s: %v", media.ErrUpstream, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: jellyfin rejected token", media.ErrAuthentication)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s: %s", media.ErrUpstream, path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", media.ErrUpstream, path, err)
	}
	return nil
}
