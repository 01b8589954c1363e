package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/confusion/internal/core/validate"
	"github.com/colonyops/confusion/internal/tui"
	"github.com/colonyops/confusion/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags

	dishID       int
	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags, dishID: -1}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "dish",
			Aliases:     []string{"d"},
			Usage:       "open the detail page of this dish id",
			Value:       -1,
			Destination: &cmd.dishID,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("CONFUSION_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	opts := tui.Options{
		Repo:   cmd.flags.Repo,
		Config: cmd.flags.Config,
	}

	if c.IsSet("dish") {
		if err := validate.DishIDField("dish", cmd.dishID); err != nil {
			return err
		}
		id := cmd.dishID
		opts.DishID = &id
	}

	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s%s", profServer.Addr(), profiler.Prefix)).
			Msg("profiler endpoint available")
	}

	log.Info().Ctx(ctx).Str("source", cmd.flags.Config.Source).Msg("starting tui")

	p := tea.NewProgram(tui.New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
