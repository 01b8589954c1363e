package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/confusion/internal/core/logging"
	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/remote"
)

const requestTimeout = 10 * time.Second

type dishesLoadedMsg struct {
	dishes []menu.Dish
	err    error
}

type dishLoadedMsg struct {
	dishID   int
	dish     menu.Dish
	comments []menu.Comment
	err      error
}

type commentPostedMsg struct {
	comment menu.Comment
	err     error
}

func loadDishes(repo menu.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		dishes, err := repo.ListDishes(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load dishes")
		}
		return dishesLoadedMsg{dishes: dishes, err: err}
	}
}

// loadDish fetches a dish and its comments. Both must succeed for the detail
// view to leave its loading state.
func loadDish(repo menu.Repository, dishID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ctx = logging.WithDishID(ctx, dishID)

		dish, err := repo.GetDish(ctx, dishID)
		if err != nil {
			log.Error().Ctx(ctx).Err(err).Msg("failed to load dish")
			return dishLoadedMsg{dishID: dishID, err: err}
		}

		comments, err := repo.ListComments(ctx, dishID)
		if err != nil {
			log.Error().Ctx(ctx).Err(err).Msg("failed to load comments")
			return dishLoadedMsg{dishID: dishID, err: err}
		}

		return dishLoadedMsg{dishID: dishID, dish: dish, comments: comments}
	}
}

func postComment(repo menu.Repository, c menu.NewComment) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ctx = logging.WithDishID(ctx, c.DishID)

		stored, err := repo.PostComment(ctx, c)
		if err != nil {
			log.Error().Ctx(ctx).Err(err).Msg("failed to post comment")
			return commentPostedMsg{err: err}
		}

		log.Info().Ctx(ctx).Int("comment_id", stored.ID).Msg("comment posted")
		return commentPostedMsg{comment: stored}
	}
}

// errorMessage renders err the way the detail view shows it. HTTP failures
// read "Error 404: Not Found".
func errorMessage(err error) string {
	var statusErr *remote.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error %d: %s", statusErr.Code, http.StatusText(statusErr.Code))
	}
	if errors.Is(err, menu.ErrDishNotFound) {
		return "Error 404: Not Found"
	}
	return err.Error()
}
