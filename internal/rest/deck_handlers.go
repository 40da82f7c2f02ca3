package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/interview-deck/internal/deck"
)

type DeckHandler struct {
	manager *deck.Manager
	log     *slog.Logger
}

func NewDeckHandler(manager *deck.Manager, log *slog.Logger) *DeckHandler {
	return &DeckHandler{
		manager: manager,
		log:     log,
	}
}

func (h *DeckHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by sortOrder. Serves the built-in dataset when the store is unavailable
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Router /api/v1/categories [get]
func (h *DeckHandler) Categories(c echo.Context) error {
	ds := h.manager.Load(c.Request().Context())

	return c.JSON(http.StatusOK, NewCategories(ds.Categories))
}

// Questions handles GET /api/v1/questions
// @Summary Get questions
// @Description Retrieves questions sorted by createdAt DESC with optional filtering by category
// @Tags questions
// @Produce json
// @Param category_id query string false "Filter by category ID"
// @Success 200 {array} rest.Question
// @Failure 400 {object} map[string]string
// @Router /api/v1/questions [get]
func (h *DeckHandler) Questions(c echo.Context) error {
	var filter QuestionFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	ds := h.manager.Load(c.Request().Context())
	questions := ds.Questions
	if filter.CategoryID != "" {
		questions = ds.QuestionsInCategory(filter.CategoryID)
	}

	return c.JSON(http.StatusOK, NewQuestions(questions))
}

// QuestionByID handles GET /api/v1/questions/:id
// @Summary Get question by ID
// @Description Retrieves a single question with its markdown question and answer
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} rest.Question
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/questions/{id} [get]
func (h *DeckHandler) QuestionByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	ds := h.manager.Load(c.Request().Context())
	q := ds.QuestionByID(id)
	if q == nil {
		return h.handleError(c, deck.ErrNotFound, http.StatusNotFound, "question not found")
	}

	return c.JSON(http.StatusOK, NewQuestion(*q))
}

// Sections handles GET /api/v1/sections
// @Summary Get study sections
// @Description Questions grouped by category in category order. Empty categories and orphaned questions are left out. nav starts with the home entry
// @Tags sections
// @Produce json
// @Success 200 {object} rest.Sections
// @Router /api/v1/sections [get]
func (h *DeckHandler) Sections(c echo.Context) error {
	ds := h.manager.Load(c.Request().Context())

	return c.JSON(http.StatusOK, NewSections(ds))
}
