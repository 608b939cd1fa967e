package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KarolinaSkr/NotesManagement/internal/api/metrics"
	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
	"github.com/KarolinaSkr/NotesManagement/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type createNoteRequest struct {
	Title     string   `json:"title" validate:"required,max=255"`
	Content   string   `json:"content" validate:"max=1000"`
	PositionX *float64 `json:"positionX"`
	PositionY *float64 `json:"positionY"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Color     string   `json:"color" validate:"omitempty,hexcolor"`
	Tags      []string `json:"tags"`
	BoardID   string   `json:"boardId" validate:"required"`
}

type updateNoteRequest struct {
	Title     string   `json:"title" validate:"required,max=255"`
	Content   string   `json:"content" validate:"max=1000"`
	PositionX float64  `json:"positionX"`
	PositionY float64  `json:"positionY"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Color     string   `json:"color" validate:"omitempty,hexcolor"`
	Tags      []string `json:"tags"`
}

// List handles GET /api/notes. With ?boardId= it returns only that board's
// notes, after re-validating that the board belongs to the caller.
//
// @Summary      List the caller's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        boardId  query    string  false  "Restrict to one board"
// @Success      200      {array}  domain.Note
// @Failure      404      {object} map[string]string
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var notes []*domain.Note
	if boardID := c.QueryParam("boardId"); boardID != "" {
		notes, err = h.service.ListByBoard(c.Request().Context(), boardID, user)
	} else {
		notes, err = h.service.List(c.Request().Context(), user)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Get handles GET /api/notes/:id.
//
// @Summary      Get a note by id
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  domain.Note
// @Failure      404  {object}  map[string]string
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Create handles POST /api/notes.
//
// @Summary      Create a note on one of the caller's boards
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note details"
// @Success      201   {object}  domain.Note
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		Title:     req.Title,
		Content:   req.Content,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
		Width:     req.Width,
		Height:    req.Height,
		Color:     req.Color,
		Tags:      req.Tags,
		BoardID:   req.BoardID,
	}, user)
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, note)
}

// Update handles PUT /api/notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "New field values"
// @Success      200   {object}  domain.Note
// @Failure      404   {object}  map[string]string
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNoteInput{
		Title:     req.Title,
		Content:   req.Content,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
		Width:     req.Width,
		Height:    req.Height,
		Color:     req.Color,
		Tags:      req.Tags,
	}, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Delete handles DELETE /api/notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNoteNotFound
	}
	return c.NoContent(http.StatusNoContent)
}

// FilterByTag handles GET /api/notes/filter?tag=.
//
// @Summary      List the caller's notes carrying a tag
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        tag  query    string  true  "Tag to filter by"
// @Success      200  {array}  domain.Note
// @Router       /api/notes/filter [get]
func (h *NoteHandler) FilterByTag(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tag := c.QueryParam("tag")
	if tag == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tag is required")
	}

	notes, err := h.service.ListByTag(c.Request().Context(), tag, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}
