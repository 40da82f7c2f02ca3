package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/interview-deck/internal/deck"
)

const (
	msgAccessDenied  = "Access Denied"
	msgNotFound      = "题目不存在"
	msgPublishFailed = "publish failed, please retry"

	publishedRedirect = adminPath + "?published=1"
)

// Admin handles GET /admin/questions. ?id= selects a question for editing.
func (h *Handler) Admin(c echo.Context) error {
	if !h.gate.Authorized(c.Request()) {
		return c.Render(http.StatusOK, "login.html", loginPage{Title: adminTitle})
	}

	ws, err := h.workspace(c)
	if err != nil {
		return err
	}

	page := h.adminPage(ws)
	page.Published = c.QueryParam("published") == "1"

	if id := c.QueryParam("id"); id != "" {
		d, ok := ws.Draft(id)
		if !ok {
			page.Error = msgNotFound
			return c.Render(http.StatusNotFound, "admin.html", page)
		}
		page.Draft = d
	}

	return c.Render(http.StatusOK, "admin.html", page)
}

// Login handles POST /admin/login
func (h *Handler) Login(c echo.Context) error {
	if err := h.gate.Login(c.Response(), c.Request(), c.FormValue("passcode")); err != nil {
		if !errors.Is(err, deck.ErrAccessDenied) {
			h.log.ErrorContext(c.Request().Context(), "admin login failed", "error", err)
		}
		return c.Render(http.StatusUnauthorized, "login.html", loginPage{
			Title: adminTitle,
			Error: msgAccessDenied,
		})
	}

	return c.Redirect(http.StatusSeeOther, adminPath)
}

// Logout handles POST /admin/logout
func (h *Handler) Logout(c echo.Context) error {
	id, err := h.gate.Logout(c.Response(), c.Request())
	if id != "" {
		h.manager.DropWorkspace(id)
	}
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "admin logout failed", "error", err)
	}

	return c.Redirect(http.StatusSeeOther, adminPath)
}

// Publish handles POST /admin/questions: create when id is empty, update otherwise.
func (h *Handler) Publish(c echo.Context) error {
	if !h.gate.Authorized(c.Request()) {
		return c.Redirect(http.StatusSeeOther, adminPath)
	}

	ws, err := h.workspace(c)
	if err != nil {
		return err
	}

	draft := deck.Draft{
		QuestionID:   strings.TrimSpace(c.FormValue("id")),
		CategoryName: c.FormValue("category"),
		Question:     c.FormValue("question"),
		Answer:       c.FormValue("answer"),
	}

	q, err := ws.Publish(c.Request().Context(), draft)
	if err != nil {
		page := h.adminPage(ws)
		page.Draft = draft

		switch {
		case errors.Is(err, deck.ErrValidation):
			page.Error = err.Error()
			return c.Render(http.StatusBadRequest, "admin.html", page)
		case errors.Is(err, deck.ErrNotFound):
			page.Error = msgNotFound
			return c.Render(http.StatusNotFound, "admin.html", page)
		default:
			h.log.ErrorContext(c.Request().Context(), "publish failed", "error", err)
			page.Error = msgPublishFailed
			return c.Render(http.StatusInternalServerError, "admin.html", page)
		}
	}

	h.log.InfoContext(c.Request().Context(), "question saved", "id", q.ID, "categoryId", q.CategoryID)
	return c.Redirect(http.StatusSeeOther, publishedRedirect)
}

func (h *Handler) workspace(c echo.Context) (*deck.Workspace, error) {
	sid, err := h.gate.SessionID(c.Response(), c.Request())
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable").SetInternal(err)
	}

	return h.manager.Workspace(c.Request().Context(), sid), nil
}

func (h *Handler) adminPage(ws *deck.Workspace) adminPage {
	return adminPage{
		Title:      adminTitle,
		Local:      h.gate.LocalMode() || ws.Source() == deck.SourceFallback,
		Items:      ws.List(),
		Categories: ws.Categories(),
		SuccessMs:  h.successIndicator.Milliseconds(),
	}
}
