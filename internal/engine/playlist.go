package engine

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	ytdlpv2 "github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytfetch/internal/common"
	"github.com/ytget/ytfetch/internal/model"
)

// Timeout constants
const (
	DefaultListTimeout = 60 * time.Second
)

// URL templates
const (
	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistClient enumerates playlist entries without touching media bytes.
type PlaylistClient struct {
	timeout time.Duration
	log     *logrus.Logger
}

// NewPlaylistClient creates a playlist lister with the default timeout.
func NewPlaylistClient(log *logrus.Logger) *PlaylistClient {
	return &PlaylistClient{
		timeout: DefaultListTimeout,
		log:     log,
	}
}

// SetTimeout sets the timeout for listing operations.
func (c *PlaylistClient) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Entries returns the playlist items in playlist order, 1-based. An URL the
// playlist id cannot be extracted from, or one the engine cannot resolve,
// fails with common.ErrMediaUnavailable.
func (c *PlaylistClient) Entries(ctx context.Context, playlistURL string) ([]model.PlaylistEntry, error) {
	id, err := extractPlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	d := ytdlpv2.New()
	items, err := d.GetPlaylistItemsAll(ctx, id, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: list playlist %s: %s", common.ErrMediaUnavailable, id, err)
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, model.PlaylistEntry{
			Index: i + 1,
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(watchURLTemplate, it.VideoID),
		})
	}

	c.log.WithFields(logrus.Fields{
		"playlist_id": id,
		"entries":     len(entries),
	}).Debug("playlist enumerated")

	return entries, nil
}

// extractPlaylistID pulls the playlist id out of the various URL forms that
// carry a "list" query parameter.
func extractPlaylistID(playlistURL string) (string, error) {
	u, err := url.Parse(playlistURL)
	if err == nil {
		if id := u.Query().Get("list"); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no playlist id in URL %s", common.ErrMediaUnavailable, playlistURL)
}
