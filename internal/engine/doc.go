package engine

// Package engine adapts the external media-fetching engines: yt-dlp (via
// github.com/lrstanley/go-ytdlp) for metadata queries and downloads, and
// github.com/ytget/ytdlp/v2 for playlist enumeration. Everything
// site-specific lives behind these adapters.
