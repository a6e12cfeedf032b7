package model

import "fmt"

// DownloadType is the user-facing download mode.
type DownloadType string

const (
	TypeVideo DownloadType = "video"
	TypeAudio DownloadType = "audio"
	TypeBoth  DownloadType = "both"
)

// ParseDownloadType validates a -t/--type flag value.
func ParseDownloadType(s string) (DownloadType, error) {
	switch DownloadType(s) {
	case TypeVideo, TypeAudio, TypeBoth:
		return DownloadType(s), nil
	}
	return "", fmt.Errorf("unknown download type %q (want video, audio or both)", s)
}

// Want states which streams a resolved quality request asks for.
type Want int

const (
	WantVideo Want = iota
	WantAudio
	WantBoth
)

// QualitySpec is a resolved quality selection. Selector renders it into the
// expression the engine understands; the mux/extract post-processing
// directive follows from Want.
type QualitySpec struct {
	Want     Want
	Height   int    // resolution ceiling in lines, 0 = uncapped
	Worst    bool   // extremal "worst" request
	FormatID string // explicit format id, passed through verbatim
}

// Selector renders the engine format-selector expression. An explicit format
// id wins over everything else; audio requests never touch video-only
// streams, video requests pair video with best audio so the result is never
// mute.
func (q QualitySpec) Selector() string {
	if q.FormatID != "" {
		return q.FormatID
	}

	switch {
	case q.Want == WantAudio:
		return "bestaudio/best"
	case q.Worst:
		return "worstvideo+worstaudio/worst"
	case q.Height > 0:
		return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", q.Height, q.Height)
	default:
		return "bestvideo+bestaudio/best"
	}
}
