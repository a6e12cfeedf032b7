package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/ytget/ytfetch/internal/common"
	"github.com/ytget/ytfetch/internal/model"
)

// YTDLP runs yt-dlp for metadata queries and downloads.
type YTDLP struct {
	log *logrus.Logger
}

// NewYTDLP creates a yt-dlp backed engine adapter.
func NewYTDLP(log *logrus.Logger) *YTDLP {
	return &YTDLP{log: log}
}

// mediaJSON mirrors the subset of the yt-dlp info dump the core consumes.
type mediaJSON struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Duration      float64      `json:"duration"`
	Uploader      string       `json:"uploader"`
	ViewCount     int64        `json:"view_count"`
	PlaylistCount int          `json:"playlist_count"`
	Formats       []formatJSON `json:"formats"`
}

type formatJSON struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	Resolution string  `json:"resolution"`
	FormatNote string  `json:"format_note"`
	Height     int     `json:"height"`
	Filesize   int64   `json:"filesize"`
	FilesizeA  float64 `json:"filesize_approx"`
}

// Info queries metadata for a single item or playlist without downloading.
// Unresolvable URLs (private, deleted, geo-blocked, malformed) surface as
// common.ErrMediaUnavailable.
func (e *YTDLP) Info(ctx context.Context, url string) (*model.MediaInfo, error) {
	raw, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	info := &model.MediaInfo{
		ID:            raw.ID,
		Title:         raw.Title,
		Duration:      int(raw.Duration),
		Uploader:      raw.Uploader,
		ViewCount:     raw.ViewCount,
		PlaylistCount: raw.PlaylistCount,
		Formats:       mapFormats(raw.Formats),
	}
	return info, nil
}

// Formats returns the raw rendition list in engine-reported order.
func (e *YTDLP) Formats(ctx context.Context, url string) ([]model.FormatDescriptor, error) {
	raw, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return mapFormats(raw.Formats), nil
}

func (e *YTDLP) fetch(ctx context.Context, url string) (*mediaJSON, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoWarnings()

	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrMediaUnavailable, err)
	}

	var raw mediaJSON
	if err := json.Unmarshal([]byte(res.Stdout), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode info for %s: %s", common.ErrMediaUnavailable, url, err)
	}
	return &raw, nil
}

// Download hands one assembled request to yt-dlp and returns the final
// on-disk path it reports. Engine errors are wrapped verbatim as
// common.ErrEngineFailure; a canceled context surfaces as the context error
// so callers can tell abandonment apart from failure.
func (e *YTDLP) Download(ctx context.Context, req *model.DownloadRequest) (string, error) {
	dl := ytdlp.New().
		Format(req.Selector).
		Output(req.OutputTemplate()).
		ForceOverwrites().
		NoWarnings().
		NoPlaylist()

	switch req.Quality.Want {
	case model.WantAudio:
		dl.ExtractAudio().AudioFormat("mp3")
	case model.WantBoth:
		dl.MergeOutputFormat("mp4")
	}

	if !req.Trim.IsZero() {
		dl.DownloadSections(req.Trim.Section())
	}

	e.log.WithFields(logrus.Fields{
		"url":      req.Ref.URL,
		"selector": req.Selector,
	}).Debug("delegating download to yt-dlp")

	res, err := dl.Run(ctx, req.Ref.URL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %s", common.ErrEngineFailure, err)
	}

	return e.finalPath(res, req), nil
}

// finalPath recovers the engine-reported filename; when yt-dlp does not echo
// one back, fall back to the request's path shape with the container the
// post-processing directive implies.
func (e *YTDLP) finalPath(res *ytdlp.Result, req *model.DownloadRequest) string {
	if res != nil {
		info, err := res.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil && *info[0].Filename != "" {
			return *info[0].Filename
		}
	}

	ext := "mp4"
	if req.Quality.Want == model.WantAudio {
		ext = "mp3"
	}
	return req.DestBase + "." + ext
}

func mapFormats(raw []formatJSON) []model.FormatDescriptor {
	formats := make([]model.FormatDescriptor, 0, len(raw))
	for _, f := range raw {
		formats = append(formats, model.FormatDescriptor{
			ID:         f.FormatID,
			Ext:        f.Ext,
			VCodec:     codecOrNone(f.VCodec),
			ACodec:     codecOrNone(f.ACodec),
			Resolution: resolutionLabel(f),
			Quality:    qualityLabel(f),
			Height:     f.Height,
			Filesize:   filesizeEstimate(f),
		})
	}
	return formats
}

func codecOrNone(codec string) string {
	if codec == "" {
		return model.CodecNone
	}
	return codec
}

func resolutionLabel(f formatJSON) string {
	if f.Resolution != "" {
		return f.Resolution
	}
	if f.Height > 0 {
		return fmt.Sprintf("%dp", f.Height)
	}
	return "audio only"
}

func qualityLabel(f formatJSON) string {
	if f.FormatNote != "" {
		return f.FormatNote
	}
	return resolutionLabel(f)
}

func filesizeEstimate(f formatJSON) int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	if f.FilesizeA > 0 {
		return int64(f.FilesizeA)
	}
	return 0
}
