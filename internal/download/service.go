package download

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/common"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/quality"
	"github.com/ytget/ytfetch/internal/timecode"
)

// Options parameterizes one single-item download.
type Options struct {
	URL      string
	Quality  string
	Type     model.DownloadType
	Start    string // time token, empty = from the beginning
	End      string // time token, empty = to the end
	Filename string // explicit base name, empty = derive from title
}

// PlaylistOptions parameterizes a playlist run. Indices are 1-based and
// inclusive; Start of 0 defaults to 1, End of 0 means through the last item.
type PlaylistOptions struct {
	URL     string
	Quality string
	Type    model.DownloadType
	Start   int
	End     int
}

// Service coordinates the download pipeline for single items and playlists.
type Service struct {
	engine      Engine
	playlists   PlaylistLister
	paths       *platform.PathResolver
	downloadDir string
	maxParallel int
	log         *logrus.Logger
}

// NewService creates a download orchestrator.
func NewService(eng Engine, playlists PlaylistLister, paths *platform.PathResolver, downloadDir string, maxParallel int, log *logrus.Logger) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		engine:      eng,
		playlists:   playlists,
		paths:       paths,
		downloadDir: downloadDir,
		maxParallel: maxParallel,
		log:         log,
	}
}

// SetDownloadDirectory overrides the output directory, e.g. from a CLI flag.
func (s *Service) SetDownloadDirectory(dir string) {
	s.downloadDir = dir
}

// VideoInfo fetches the metadata snapshot for a URL. Always re-queried, never
// cached.
func (s *Service) VideoInfo(ctx context.Context, url string) (*model.MediaInfo, error) {
	return s.engine.Info(ctx, url)
}

// ListFormats returns the classified catalog of available renditions.
func (s *Service) ListFormats(ctx context.Context, url string) (catalog.Catalog, error) {
	formats, err := s.engine.Formats(ctx, url)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Classify(formats), nil
}

// Download runs the single-item pipeline: info fetch, quality resolution,
// trim parsing, destination resolution, request build, delegation. The first
// failure at any stage is surfaced to the caller unswallowed; nothing is
// retried here.
func (s *Service) Download(ctx context.Context, opts Options) (*model.DownloadResult, error) {
	task := model.NewTask(opts.URL)
	log := s.log.WithFields(logrus.Fields{"task": task.ID, "url": opts.URL})

	info, err := s.engine.Info(ctx, opts.URL)
	if err != nil {
		task.Fail(err)
		return nil, err
	}
	task.Status = model.TaskStatusInfoFetched
	log.WithField("title", info.Title).Debug("info fetched")

	req, err := s.buildRequest(ctx, opts, info)
	if err != nil {
		task.Fail(err)
		return nil, err
	}
	task.Status = model.TaskStatusRequestBuilt

	task.Status = model.TaskStatusDelegated
	path, err := s.engine.Download(ctx, req)
	if err != nil {
		task.Fail(err)
		log.WithError(err).Debug("download failed")
		return nil, err
	}

	task.Complete(path)
	log.WithField("path", path).Info("download completed")
	return &model.DownloadResult{Path: path, Title: info.Title}, nil
}

// buildRequest assembles the immutable DownloadRequest. All locally
// detectable errors (bad trim tokens, inverted ranges, unwritable output
// directory) fail here, before anything is delegated to the engine.
func (s *Service) buildRequest(ctx context.Context, opts Options, info *model.MediaInfo) (*model.DownloadRequest, error) {
	spec := quality.Resolve(opts.Quality, opts.Type)
	if spec.Height > 0 {
		formats, err := s.engine.Formats(ctx, opts.URL)
		if err != nil {
			return nil, err
		}
		spec.Height = quality.NearestHeight(spec.Height, catalog.Classify(formats).Video)
	}

	trim, err := parseTrim(opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	dest, err := s.paths.Resolve(s.downloadDir, opts.Filename, info.Title, info.ID)
	if err != nil {
		return nil, err
	}

	return &model.DownloadRequest{
		Ref:      model.NewMediaRef(opts.URL),
		Quality:  spec,
		Selector: spec.Selector(),
		Trim:     trim,
		DestBase: dest,
	}, nil
}

// DownloadPlaylist iterates a playlist index range. Every index runs the
// single-item pipeline independently; a failed item is recorded with its
// index and iteration continues. The returned Completed slice preserves
// ascending index order even though items may download concurrently. The
// call itself only fails when the playlist cannot be resolved or the range
// is invalid.
func (s *Service) DownloadPlaylist(ctx context.Context, opts PlaylistOptions) (*model.PlaylistResult, error) {
	entries, err := s.playlists.Entries(ctx, opts.URL)
	if err != nil {
		return nil, err
	}
	length := len(entries)

	start, end, err := resolveRange(opts.Start, opts.End, length)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"url":   opts.URL,
		"start": start,
		"end":   end,
		"total": length,
	}).Info("starting playlist download")

	n := end - start + 1
	results := make([]*model.DownloadResult, n) // one producer per slot
	causes := make([]error, n)

	sem := make(chan struct{}, s.maxParallel)
	var wg sync.WaitGroup

	for slot := 0; slot < n; slot++ {
		index := start + slot
		entry := entries[index-1]

		// Cancellation stops launching new items; already-recorded
		// results stay intact.
		if ctx.Err() != nil {
			causes[slot] = fmt.Errorf("item %d not started: %w", index, ctx.Err())
			continue
		}

		wg.Add(1)
		go func(slot, index int, entry model.PlaylistEntry) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				causes[slot] = fmt.Errorf("item %d not started: %w", index, ctx.Err())
				return
			}

			res, err := s.Download(ctx, Options{
				URL:     entry.URL,
				Quality: opts.Quality,
				Type:    opts.Type,
			})
			if err != nil {
				s.log.WithError(err).WithField("index", index).Warn("playlist item failed")
				causes[slot] = err
				return
			}
			res.Index = index
			results[slot] = res
		}(slot, index, entry)
	}

	wg.Wait()

	// Reassemble in ascending index order regardless of completion order.
	out := &model.PlaylistResult{}
	for slot := 0; slot < n; slot++ {
		switch {
		case results[slot] != nil:
			out.Completed = append(out.Completed, *results[slot])
		case causes[slot] != nil:
			out.Failures = append(out.Failures, model.ItemFailure{Index: start + slot, Err: causes[slot]})
		}
	}
	return out, nil
}

// resolveRange normalizes a 1-based inclusive playlist range against the
// resolved length: start defaults to 1, an unset end means through the last
// item, an end past the last item is clamped. A start beyond the playlist or
// beyond the end is invalid.
func resolveRange(start, end, length int) (int, int, error) {
	if start == 0 {
		start = 1
	}
	if start < 1 {
		return 0, 0, fmt.Errorf("%w: start index %d must be at least 1", common.ErrInvalidRange, start)
	}
	if start > length {
		return 0, 0, fmt.Errorf("%w: start index %d exceeds playlist length %d", common.ErrInvalidRange, start, length)
	}
	if end == 0 || end > length {
		end = length
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: start index %d is after end index %d", common.ErrInvalidRange, start, end)
	}
	return start, end, nil
}

func parseTrim(start, end string) (model.TrimSpec, error) {
	var trim model.TrimSpec
	if start != "" {
		secs, err := timecode.Parse(start)
		if err != nil {
			return model.TrimSpec{}, err
		}
		trim.Start = &secs
	}
	if end != "" {
		secs, err := timecode.Parse(end)
		if err != nil {
			return model.TrimSpec{}, err
		}
		trim.End = &secs
	}
	return trim, trim.Validate()
}
