package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colonyops/confusion/internal/core/logging"
	"github.com/colonyops/confusion/internal/core/menu"
)

// commentRequest is the json-server shaped body of POST /comments.
type commentRequest struct {
	DishID  *int   `json:"dishId"`
	Rating  *int   `json:"rating"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

func (r commentRequest) formValues() menu.FormValues {
	v := menu.FormValues{Author: r.Author, Comment: r.Comment}
	if r.Rating != nil {
		v.Rating = strconv.Itoa(*r.Rating)
	}
	return v
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listDishes(c *gin.Context) {
	dishes, err := s.repo.ListDishes(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (s *Server) getDish(c *gin.Context) {
	id, ok := dishIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	dish, err := s.repo.GetDish(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (s *Server) listComments(c *gin.Context) {
	raw := c.Query("dishId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": menu.FieldErrors{"dishId": menu.ErrRequired.Error()}})
		return
	}
	id, ok := dishIDParam(c, raw)
	if !ok {
		return
	}

	comments, err := s.repo.ListComments(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) postComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := menu.ValidateForm(req.formValues())
	if req.DishID == nil {
		if errs == nil {
			errs = menu.FieldErrors{}
		}
		errs["dishId"] = menu.ErrRequired.Error()
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	nc, err := req.formValues().ToNewComment(*req.DishID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	nc.Date = req.Date

	ctx := logging.WithDishID(c.Request.Context(), nc.DishID)
	comment, err := s.repo.PostComment(ctx, nc)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.log.Info().Ctx(ctx).Int("comment_id", comment.ID).Msg("comment posted")
	c.JSON(http.StatusCreated, comment)
}

func dishIDParam(c *gin.Context, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id " + strconv.Quote(raw)})
		return 0, false
	}
	return id, true
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, menu.ErrDishNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.log.Error().Ctx(c.Request.Context()).Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
