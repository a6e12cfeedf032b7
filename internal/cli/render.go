package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/common"
	"github.com/ytget/ytfetch/internal/model"
)

// Presentation truncation: the catalog returns everything, the table shows
// the head of each group.
const (
	maxVideoRows = 15
	maxAudioRows = 10
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render("ytfetch — video & audio downloader\n        powered by yt-dlp"))
}

func printInfo(w io.Writer, info *model.MediaInfo) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Video Information:"))
	fmt.Fprintf(w, "  Title: %s\n", valueStyle.Render(info.Title))
	fmt.Fprintf(w, "  Duration: %s\n", info.DurationClock())
	fmt.Fprintf(w, "  Uploader: %s\n", info.Uploader)
	fmt.Fprintf(w, "  Video ID: %s\n\n", info.ID)
}

func printFormats(w io.Writer, cat catalog.Catalog) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Available Formats:"))
	fmt.Fprintf(w, "%-8s %-12s %-15s %-15s %-12s\n", "ID", "Extension", "Resolution", "Quality", "Size")
	fmt.Fprintln(w, lipgloss.NewStyle().Faint(true).Render("---------------------------------------------------------------"))

	if len(cat.Video) > 0 {
		fmt.Fprintf(w, "\n%s\n", accentStyle.Render("Video Formats:"))
		printFormatRows(w, cat.Video, maxVideoRows)
	}

	if len(cat.Audio) > 0 {
		fmt.Fprintf(w, "\n%s\n", accentStyle.Render("Audio Formats:"))
		printFormatRows(w, cat.Audio, maxAudioRows)
	}
}

func printFormatRows(w io.Writer, formats []model.FormatDescriptor, limit int) {
	if len(formats) > limit {
		formats = formats[:limit]
	}
	for _, f := range formats {
		fmt.Fprintf(w, "%-8s %-12s %-15s %-15s %-12s\n",
			f.ID, f.Ext, f.Resolution, f.Quality, formatSize(f.Filesize))
	}
}

func formatSize(bytes int64) string {
	if bytes <= 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(bytes))
}

func printPlaylistSummary(w io.Writer, res *model.PlaylistResult) {
	fmt.Fprintf(w, "\n%s\n", successStyle.Render(
		fmt.Sprintf("Successfully downloaded %d video(s)!", len(res.Completed))))
	for _, item := range res.Completed {
		fmt.Fprintf(w, "  [%d] %s\n", item.Index, item.Path)
	}

	if len(res.Failures) > 0 {
		fmt.Fprintf(w, "\n%s\n", errorStyle.Render(
			fmt.Sprintf("%d item(s) failed:", len(res.Failures))))
		for _, f := range res.Failures {
			fmt.Fprintf(w, "  [%d] %v\n", f.Index, f.Err)
		}
	}
}

// PrintError renders a failure, prefixed by kind so bad input, engine
// trouble and disk trouble read differently.
func PrintError(w io.Writer, err error) {
	var kind string
	switch {
	case errors.Is(err, common.ErrInvalidTimeFormat),
		errors.Is(err, common.ErrInvalidTrimRange),
		errors.Is(err, common.ErrInvalidRange):
		kind = "Input error"
	case errors.Is(err, common.ErrMediaUnavailable):
		kind = "Media error"
	case errors.Is(err, common.ErrEngineFailure):
		kind = "Engine error"
	case errors.Is(err, common.ErrFilesystem):
		kind = "Disk error"
	default:
		kind = "Error"
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%s: %v", kind, err)))
}
