package download

import (
	"context"

	"github.com/ytget/ytfetch/internal/model"
)

// Engine defines what the orchestrator needs from the media-fetching engine.
// The concrete implementation is engine.YTDLP. Defined here (at the consumer)
// so tests can inject a fake.
type Engine interface {
	// Info queries metadata for a URL without downloading.
	Info(ctx context.Context, url string) (*model.MediaInfo, error)

	// Formats returns the raw rendition list in engine-reported order.
	Formats(ctx context.Context, url string) ([]model.FormatDescriptor, error)

	// Download executes one assembled request and returns the final path.
	Download(ctx context.Context, req *model.DownloadRequest) (string, error)
}

// PlaylistLister enumerates the ordered entries of a playlist URL.
// The concrete implementation is engine.PlaylistClient.
type PlaylistLister interface {
	Entries(ctx context.Context, url string) ([]model.PlaylistEntry, error)
}
