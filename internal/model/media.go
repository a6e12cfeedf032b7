package model

import (
	"fmt"
	"strings"
)

// CodecNone is the sentinel the engine reports for a missing stream: a
// descriptor with VCodec == CodecNone carries no video track, one with
// ACodec == CodecNone carries no audio track.
const CodecNone = "none"

// MediaKind distinguishes a single item URL from a playlist URL.
type MediaKind string

const (
	KindSingle   MediaKind = "single"
	KindPlaylist MediaKind = "playlist"
)

// MediaRef identifies a remote media item or playlist. Immutable once built.
type MediaRef struct {
	URL  string
	Kind MediaKind
}

// NewMediaRef resolves the kind from the URL shape: anything carrying a
// "list=" query parameter is treated as a playlist.
func NewMediaRef(url string) MediaRef {
	kind := KindSingle
	if strings.Contains(url, "list=") {
		kind = KindPlaylist
	}
	return MediaRef{URL: url, Kind: kind}
}

// MediaInfo is a metadata snapshot for one media item. It is produced per
// query and never cached across calls.
type MediaInfo struct {
	ID            string
	Title         string
	Duration      int // seconds
	Uploader      string
	ViewCount     int64
	PlaylistCount int // number of entries when the URL is a playlist
	Formats       []FormatDescriptor
}

// DurationClock returns the duration formatted as hh:mm:ss, or mm:ss when
// under an hour, or "—" if unknown.
func (m *MediaInfo) DurationClock() string {
	if m.Duration <= 0 {
		return "—"
	}

	hours := m.Duration / 3600
	minutes := (m.Duration % 3600) / 60
	seconds := m.Duration % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDescriptor describes one available rendition of a media item.
type FormatDescriptor struct {
	ID         string
	Ext        string
	VCodec     string
	ACodec     string
	Resolution string
	Quality    string // derived label, e.g. "720p"
	Height     int    // vertical resolution, 0 if not applicable
	Filesize   int64  // estimated bytes, 0 if unknown
}

// HasVideo reports whether the rendition carries a video track.
func (f FormatDescriptor) HasVideo() bool {
	return f.VCodec != CodecNone && f.VCodec != ""
}

// AudioOnly reports whether the rendition carries audio and no video.
func (f FormatDescriptor) AudioOnly() bool {
	return !f.HasVideo() && f.ACodec != CodecNone && f.ACodec != ""
}

// PlaylistEntry is one ordered item of a playlist listing.
type PlaylistEntry struct {
	Index int // 1-based position in the playlist
	ID    string
	Title string
	URL   string
}
