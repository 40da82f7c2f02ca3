package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	categoriesPath   = "/categories"
	questionsPath    = "/questions"
	questionByIDPath = "/questions/:id"
	sectionsPath     = "/sections"

	healthPath      = "/health"
	swaggerDocPath  = "/swagger/doc.json"
	contentTypeJSON = "application/json"
)

// RegisterRoutes registers the JSON API, health check and swagger document on e.
func (h *DeckHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group(apiV1Prefix)
	api.GET(categoriesPath, h.Categories)
	api.GET(questionsPath, h.Questions)
	api.GET(questionByIDPath, h.QuestionByID)
	api.GET(sectionsPath, h.Sections)

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerDocPath, h.handleSwaggerDoc)
}

// handleHealth handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *DeckHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DeckHandler) handleSwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger document unavailable")
	}

	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}
