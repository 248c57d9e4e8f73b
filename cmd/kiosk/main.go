package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/katlegop/baacafe-kiosk/internal/buildinfo"
	"github.com/katlegop/baacafe-kiosk/internal/cli"
	"github.com/katlegop/baacafe-kiosk/internal/config"
	"github.com/katlegop/baacafe-kiosk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start kiosk", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
