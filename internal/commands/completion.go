package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// DishIDCompleter returns a ShellCompleteFunc that suggests dish ids after a
// --dish flag. Each suggestion is written as "id:name" so zsh shows the dish
// name next to the id.
//
// Anything else falls back to the default flag completion behavior.
func DishIDCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		args := cmd.Args()
		if !args.Present() || !isDishFlag(args.Slice()[args.Len()-1]) {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}

		if flags.Repo == nil {
			return
		}
		dishes, err := flags.Repo.ListDishes(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, d := range dishes {
			_, _ = fmt.Fprintf(w, "%d:%s\n", d.ID, strings.ReplaceAll(d.Name, ":", `\:`))
		}
	}
}

func isDishFlag(arg string) bool {
	return arg == "--dish" || arg == "-d"
}
