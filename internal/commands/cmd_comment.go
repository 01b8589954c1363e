package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/confusion/internal/core/logging"
	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/internal/core/validate"
)

type CommentCmd struct {
	flags *Flags

	// Command-specific flags
	dishID int
	rating int
	author string
	text   string
}

// NewCommentCmd creates a new comment command
func NewCommentCmd(flags *Flags) *CommentCmd {
	return &CommentCmd{flags: flags}
}

// Register adds the comment command to the application
func (cmd *CommentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "comment",
		Usage:     "Post a comment on a dish",
		UsageText: "confusion comment --dish ID [--rating N] [--author NAME] [--text TEXT]",
		Description: `Posts a rated comment on a dish.

When --rating or --author is omitted and stdin is a terminal, an
interactive form prompts for the missing values. The same rules as the
terminal form apply: a rating from 1 to 5 and an author of 3 to 15
characters.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "dish",
				Aliases:     []string{"d"},
				Usage:       "id of the dish to comment on",
				Required:    true,
				Destination: &cmd.dishID,
			},
			&cli.IntFlag{
				Name:        "rating",
				Aliases:     []string{"r"},
				Usage:       "rating from 1 to 5",
				Destination: &cmd.rating,
			},
			&cli.StringFlag{
				Name:        "author",
				Aliases:     []string{"a"},
				Usage:       "your name",
				Destination: &cmd.author,
			},
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "comment text",
				Destination: &cmd.text,
			},
		},
		ShellComplete: DishIDCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *CommentCmd) run(ctx context.Context, c *cli.Command) error {
	if err := validate.DishIDField("dish", cmd.dishID); err != nil {
		return err
	}

	values := menu.FormValues{Author: cmd.author, Comment: cmd.text}
	if c.IsSet("rating") {
		values.Rating = strconv.Itoa(cmd.rating)
	}

	if (values.Rating == "" || values.Author == "") && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := cmd.runForm(&values); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := validate.CommentForm(values); err != nil {
		return err
	}

	nc, err := values.ToNewComment(cmd.dishID)
	if err != nil {
		return err
	}

	ctx = logging.WithDishID(ctx, cmd.dishID)
	stored, err := cmd.flags.Repo.PostComment(ctx, nc)
	if err != nil {
		return fmt.Errorf("post comment: %w", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(
		fmt.Sprintf("Comment %d posted on dish %d", stored.ID, stored.DishID)))
	return nil
}

func (cmd *CommentCmd) runForm(values *menu.FormValues) error {
	ratings := make([]string, 0, menu.RatingMax)
	for r := menu.RatingMin; r <= menu.RatingMax; r++ {
		ratings = append(ratings, strconv.Itoa(r))
	}
	if values.Rating == "" {
		values.Rating = ratings[len(ratings)-1]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Rating").
				Options(huh.NewOptions(ratings...)...).
				Value(&values.Rating),
			huh.NewInput().
				Title("Your Name").
				Description(fmt.Sprintf("%d to %d characters", menu.AuthorMinLength, menu.AuthorMaxLength)).
				Validate(menu.ValidateAuthor).
				Value(&values.Author),
			huh.NewText().
				Title("Comment").
				Value(&values.Comment),
		),
	).WithTheme(huh.ThemeCharm()).Run()
}
