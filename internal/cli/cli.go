// Package cli implements the command-line surface: flag parsing, banner and
// table rendering, and dispatch into the download orchestrator.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/model"
)

// App wires the CLI commands to the download service.
type App struct {
	svc *download.Service
	out io.Writer
}

// New creates the CLI application.
func New(svc *download.Service, out io.Writer) *App {
	return &App{svc: svc, out: out}
}

// RootCommand builds the root cobra command.
func (a *App) RootCommand(version string) *cobra.Command {
	var (
		outputDir     string
		qualityFlag   string
		typeFlag      string
		startFlag     string
		endFlag       string
		filenameFlag  string
		listFormats   bool
		infoOnly      bool
		playlist      bool
		playlistStart int
		playlistEnd   int
	)

	cmd := &cobra.Command{
		Use:     "ytfetch <url>",
		Short:   "Download videos and audio from streaming sites",
		Version: version,
		Args:    cobra.ExactArgs(1),
		Example: `  # Download best quality video
  ytfetch https://youtube.com/watch?v=VIDEO_ID

  # Download audio only as MP3
  ytfetch https://youtube.com/watch?v=VIDEO_ID -t audio

  # Download specific quality
  ytfetch https://youtube.com/watch?v=VIDEO_ID -q 720p

  # Trim from 1:30 to 3:45
  ytfetch https://youtube.com/watch?v=VIDEO_ID -s 00:01:30 -e 00:03:45

  # List available formats
  ytfetch https://youtube.com/watch?v=VIDEO_ID --list-formats

  # Download videos 1-5 of a playlist
  ytfetch "https://youtube.com/playlist?list=PLAYLIST_ID" --playlist --playlist-start 1 --playlist-end 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			ctx := cmd.Context()

			typ, err := model.ParseDownloadType(typeFlag)
			if err != nil {
				return err
			}

			if outputDir != "" {
				a.svc.SetDownloadDirectory(outputDir)
			}

			printBanner(a.out)

			switch {
			case listFormats:
				info, err := a.svc.VideoInfo(ctx, url)
				if err != nil {
					return err
				}
				printInfo(a.out, info)

				cat, err := a.svc.ListFormats(ctx, url)
				if err != nil {
					return err
				}
				printFormats(a.out, cat)
				return nil

			case infoOnly:
				info, err := a.svc.VideoInfo(ctx, url)
				if err != nil {
					return err
				}
				printInfo(a.out, info)
				return nil

			case playlist:
				fmt.Fprintln(a.out, accentStyle.Render("Downloading playlist..."))
				res, err := a.svc.DownloadPlaylist(ctx, download.PlaylistOptions{
					URL:     url,
					Quality: qualityFlag,
					Type:    typ,
					Start:   playlistStart,
					End:     playlistEnd,
				})
				if err != nil {
					return err
				}
				printPlaylistSummary(a.out, res)
				if ctx.Err() != nil {
					return fmt.Errorf("playlist download interrupted: %w", ctx.Err())
				}
				return nil

			default:
				info, err := a.svc.VideoInfo(ctx, url)
				if err != nil {
					return err
				}
				printInfo(a.out, info)

				fmt.Fprintln(a.out, accentStyle.Render("Starting download..."))
				res, err := a.svc.Download(ctx, download.Options{
					URL:      url,
					Quality:  qualityFlag,
					Type:     typ,
					Start:    startFlag,
					End:      endFlag,
					Filename: filenameFlag,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "\n%s\n", successStyle.Render("✓ Download completed successfully!"))
				fmt.Fprintf(a.out, "Saved to: %s\n", pathStyle.Render(res.Path))
				return nil
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outputDir, "output", "o", "", "output directory (default: configured download folder)")
	flags.StringVarP(&qualityFlag, "quality", "q", "best", "video quality: best, worst, 360p, 720p, 1080p, or a format id")
	flags.StringVarP(&typeFlag, "type", "t", "video", "download type: video, audio, or both")
	flags.StringVarP(&startFlag, "start", "s", "", "start time for trimming (HH:MM:SS or seconds)")
	flags.StringVarP(&endFlag, "end", "e", "", "end time for trimming (HH:MM:SS or seconds)")
	flags.StringVarP(&filenameFlag, "filename", "f", "", "custom output filename (without extension)")
	flags.BoolVar(&listFormats, "list-formats", false, "list all available formats without downloading")
	flags.BoolVar(&infoOnly, "info", false, "show video information without downloading")
	flags.BoolVar(&playlist, "playlist", false, "download entire playlist")
	flags.IntVar(&playlistStart, "playlist-start", 1, "playlist start index")
	flags.IntVar(&playlistEnd, "playlist-end", 0, "playlist end index (default: last item)")

	return cmd
}
