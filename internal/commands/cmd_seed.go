package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/internal/data/stores"
	"github.com/colonyops/confusion/pkg/iojson"
)

type SeedCmd struct {
	flags  *Flags
	reader *iojson.FileReader[stores.SeedData]
}

// NewSeedCmd creates a new seed command
func NewSeedCmd(flags *Flags) *SeedCmd {
	return &SeedCmd{flags: flags, reader: iojson.NewFileReader[stores.SeedData]()}
}

// Register adds the seed command to the application
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "seed",
		Usage:     "Load dishes and comments into the local database",
		UsageText: "confusion seed [-f db.json ...]",
		Description: `Reads one or more json-server style documents of the form
{"dishes": [...], "comments": [...]} and upserts them into the local
database. Each document is loaded in its own transaction.

Reads stdin when no --file is given.`,
		Flags:  []cli.Flag{cmd.reader.Flag()},
		Action: cmd.run,
	})

	return app
}

func (cmd *SeedCmd) run(ctx context.Context, c *cli.Command) error {
	docs, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read seed data: %w", err)
	}

	var total stores.SeedResult
	for _, doc := range docs {
		res, err := cmd.flags.Store.Seed(ctx, doc)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		total.Dishes += res.Dishes
		total.Comments += res.Comments
	}

	log.Info().
		Int("dishes", total.Dishes).
		Int("comments", total.Comments).
		Msg("seeded database")

	_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(
		fmt.Sprintf("Loaded %d dishes and %d comments", total.Dishes, total.Comments)))
	return nil
}
