package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KarolinaSkr/NotesManagement/internal/api/metrics"
	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
	"github.com/KarolinaSkr/NotesManagement/internal/core/ports"
)

// BoardHandler handles HTTP requests for board operations.
type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

type boardRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type countResponse struct {
	Count int64 `json:"count"`
	Limit int   `json:"limit"`
}

// List handles GET /api/boards.
//
// @Summary      List the caller's boards
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Board
// @Router       /api/boards [get]
func (h *BoardHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	boards, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, boards)
}

// Get handles GET /api/boards/:id.
//
// @Summary      Get a board by id
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Board id"
// @Success      200  {object}  domain.Board
// @Failure      404  {object}  map[string]string
// @Router       /api/boards/{id} [get]
func (h *BoardHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	board, err := h.service.Get(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Create handles POST /api/boards.
//
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      boardRequest  true  "Board details"
// @Success      201   {object}  domain.Board
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/boards [post]
func (h *BoardHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := h.service.Create(c.Request().Context(), req.Name, user)
	if err != nil {
		return err
	}

	metrics.BoardsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, board)
}

// Update handles PUT /api/boards/:id.
//
// @Summary      Rename a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Board id"
// @Param        body  body      boardRequest  true  "New name"
// @Success      200   {object}  domain.Board
// @Failure      404   {object}  map[string]string
// @Router       /api/boards/{id} [put]
func (h *BoardHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Delete handles DELETE /api/boards/:id. Deleting a board removes every note
// it owns.
//
// @Summary      Delete a board and its notes
// @Tags         boards
// @Security     BearerAuth
// @Param        id  path  string  true  "Board id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/boards/{id} [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrBoardNotFound
	}
	return c.NoContent(http.StatusNoContent)
}

// Count handles GET /api/boards/count, used by the client to surface the
// board quota.
//
// @Summary      Count the caller's boards
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /api/boards/count [get]
func (h *BoardHandler) Count(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.service.Count(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: count, Limit: domain.MaxBoardsPerUser})
}
