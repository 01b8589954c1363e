package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/confusion/internal/core/logging"
	"github.com/colonyops/confusion/internal/server"
)

type ServeCmd struct {
	flags *Flags

	addr  string
	pprof bool
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the menu over HTTP",
		UsageText: "confusion serve [--addr HOST:PORT]",
		Description: `Starts a json-server compatible REST API backed by the local database:

  GET  /dishes          GET /dishes/:id
  GET  /comments?dishId=N
  POST /comments
  GET  /images/*        files from <data-dir>/images

Point another confusion at it with source: remote and remote_url.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (defaults to server.addr from config)",
				Sources:     cli.EnvVars("CONFUSION_ADDR"),
				Destination: &cmd.addr,
			},
			&cli.BoolFlag{
				Name:        "pprof",
				Usage:       "expose runtime profiles under /debug/pprof/",
				Destination: &cmd.pprof,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	addr := cmd.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	imagesDir := cfg.ImagesDir()
	if _, err := os.Stat(imagesDir); err != nil {
		log.Warn().Str("dir", imagesDir).Msg("images directory not found, /images will return 404")
	}

	srv := server.New(cmd.flags.Store, logging.Component("server"), server.Options{
		Addr:            addr,
		ImagesDir:       imagesDir,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Pprof:           cmd.pprof,
	})

	return srv.Run(ctx)
}
