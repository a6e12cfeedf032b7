package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ytget/ytfetch/internal/cli"
	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/engine"
	"github.com/ytget/ytfetch/internal/platform"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	settings, err := config.Load()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	}

	svc := download.NewService(
		engine.NewYTDLP(log),
		engine.NewPlaylistClient(log),
		platform.NewPathResolver(afero.NewOsFs()),
		settings.DownloadDir,
		settings.MaxParallel,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(svc, os.Stdout)
	if err := app.RootCommand(version).ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
