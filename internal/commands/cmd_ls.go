package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/stores"
	"github.com/colonyops/confusion/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all dishes",
		UsageText: "confusion ls [--json]",
		Description: `Displays a table of every dish on the menu with its comment count,
average rating, and the age of its latest comment.

Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// dishInfo is the JSON output format for confusion ls --json.
type dishInfo struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	Price       string     `json:"price,omitempty"`
	Featured    bool       `json:"featured"`
	Comments    int        `json:"comments"`
	AvgRating   float64    `json:"avgRating"`
	LastComment *time.Time `json:"lastComment,omitempty"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	dishes, err := cmd.flags.Repo.ListDishes(ctx)
	if err != nil {
		return fmt.Errorf("list dishes: %w", err)
	}

	if len(dishes) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No dishes found. Run 'confusion seed' to load a menu.\n")
		}
		return nil
	}

	stats, err := cmd.stats(ctx, dishes)
	if err != nil {
		return fmt.Errorf("comment stats: %w", err)
	}

	infos := make([]dishInfo, 0, len(dishes))
	for _, d := range dishes {
		infos = append(infos, buildDishInfo(d, stats[d.ID]))
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode dish: %w", err)
			}
		}
		return nil
	}

	writeDishTable(out, infos)
	return nil
}

// stats uses the store's aggregate query for local data and falls back to
// one comment listing per dish for a remote source.
func (cmd *LsCmd) stats(ctx context.Context, dishes []menu.Dish) (map[int]stores.DishStats, error) {
	if _, local := cmd.flags.Repo.(*stores.MenuStore); local {
		return cmd.flags.Store.CommentStats(ctx)
	}

	out := make(map[int]stores.DishStats, len(dishes))
	for _, d := range dishes {
		comments, err := cmd.flags.Repo.ListComments(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		out[d.ID] = stores.SummarizeComments(comments)
	}
	return out, nil
}

func buildDishInfo(d menu.Dish, s stores.DishStats) dishInfo {
	info := dishInfo{
		ID:        d.ID,
		Name:      d.Name,
		Category:  d.Category,
		Price:     d.Price,
		Featured:  d.Featured,
		Comments:  s.Count,
		AvgRating: s.AvgRating,
	}
	if !s.LastComment.IsZero() {
		last := s.LastComment
		info.LastComment = &last
	}
	return info
}

func writeDishTable(out io.Writer, infos []dishInfo) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tCOMMENTS\tRATING\tLAST COMMENT")

	for _, info := range infos {
		rating := "-"
		if info.Comments > 0 {
			rating = fmt.Sprintf("%.1f", info.AvgRating)
		}
		last := "never"
		if info.LastComment != nil {
			last = humanize.Time(*info.LastComment)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Name, info.Category, info.Price, humanize.Comma(int64(info.Comments)), rating, last)
	}

	_ = w.Flush()
}
