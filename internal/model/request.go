package model

import (
	"fmt"

	"github.com/ytget/ytfetch/internal/common"
)

// TrimSpec restricts the download to a sub-range of the source timeline.
// A nil bound means "from the beginning" / "to the end".
type TrimSpec struct {
	Start *int // seconds
	End   *int // seconds
}

// IsZero reports whether no trimming was requested.
func (t TrimSpec) IsZero() bool {
	return t.Start == nil && t.End == nil
}

// Validate rejects a range whose end does not come after its start. Open
// bounds are always valid.
func (t TrimSpec) Validate() error {
	if t.Start != nil && *t.Start < 0 {
		return fmt.Errorf("%w: start %d is negative", common.ErrInvalidTrimRange, *t.Start)
	}
	if t.End != nil && *t.End < 0 {
		return fmt.Errorf("%w: end %d is negative", common.ErrInvalidTrimRange, *t.End)
	}
	if t.Start != nil && t.End != nil && *t.End <= *t.Start {
		return fmt.Errorf("%w: end %d must be greater than start %d", common.ErrInvalidTrimRange, *t.End, *t.Start)
	}
	return nil
}

// Section renders the engine's download-sections directive for the range.
func (t TrimSpec) Section() string {
	start := 0
	if t.Start != nil {
		start = *t.Start
	}
	if t.End != nil {
		return fmt.Sprintf("*%d-%d", start, *t.End)
	}
	return fmt.Sprintf("*%d-inf", start)
}

// DownloadRequest is everything the engine needs for one item. Constructed
// once by the orchestrator and never mutated afterwards.
type DownloadRequest struct {
	Ref      MediaRef
	Quality  QualitySpec
	Selector string // rendered once at build time, after any height clamping
	Trim     TrimSpec
	DestBase string // directory + base name; the engine appends the extension
}

// OutputTemplate returns the engine output template for the destination. The
// container extension is the engine's call, not ours.
func (r *DownloadRequest) OutputTemplate() string {
	return r.DestBase + ".%(ext)s"
}

// DownloadResult records one completed download.
type DownloadResult struct {
	Index int // 1-based playlist index, 0 for single-item downloads
	Path  string
	Title string
}

// ItemFailure tags a per-item playlist failure with its originating index.
type ItemFailure struct {
	Index int
	Err   error
}

// PlaylistResult aggregates a playlist run: completed items in ascending
// index order, failures reported alongside rather than silently dropped.
type PlaylistResult struct {
	Completed []DownloadResult
	Failures  []ItemFailure
}
