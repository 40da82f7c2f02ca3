package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/interview-deck/internal/auth"
	"github.com/daniilsolovey/interview-deck/internal/deck"
	"github.com/daniilsolovey/interview-deck/internal/study"
)

const (
	indexPath       = "/"
	questionPath    = "/questions/:id"
	adminPath       = "/admin/questions"
	adminLoginPath  = "/admin/login"
	adminLogoutPath = "/admin/logout"
	staticPrefix    = "/static"

	pageTitle  = "Interview Deck"
	adminTitle = "Interview Deck Admin"
)

type Handler struct {
	manager          *deck.Manager
	gate             *auth.Gate
	views            *Views
	hero             study.AutoFlipper
	successIndicator time.Duration
	log              *slog.Logger
}

func NewHandler(manager *deck.Manager, gate *auth.Gate, views *Views, hero study.AutoFlipper, successIndicator time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		manager:          manager,
		gate:             gate,
		views:            views,
		hero:             hero,
		successIndicator: successIndicator,
		log:              log,
	}
}

// RegisterRoutes installs the HTML pages and static assets on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Renderer = h.views

	e.GET(indexPath, h.Index)
	e.GET(questionPath, h.Question)

	e.GET(adminPath, h.Admin)
	e.POST(adminPath, h.Publish)
	e.POST(adminLoginPath, h.Login)
	e.POST(adminLogoutPath, h.Logout)

	e.StaticFS(staticPrefix, echo.MustSubFS(staticFS, "static"))
}

// Index handles GET /
func (h *Handler) Index(c echo.Context) error {
	ds, ok := h.load(c)
	if !ok {
		return nil
	}

	return c.Render(http.StatusOK, "index.html", h.studyPage(ds))
}

// Question handles GET /questions/:id, the study page with the modal open.
// ?side=back shows the answer, ?key= is a key pressed while the modal was open.
func (h *Handler) Question(c echo.Context) error {
	ds, ok := h.load(c)
	if !ok {
		return nil
	}

	page := h.studyPage(ds)
	q := ds.QuestionByID(c.Param("id"))
	if q == nil {
		page.Notice = "题目不存在"
		return c.Render(http.StatusNotFound, "index.html", page)
	}

	var modal study.Modal
	modal.Open(*q)
	if study.ParseSide(c.QueryParam("side")) == study.Back {
		modal.Flip()
	}
	if modal.HandleKey(c.QueryParam("key")) {
		return c.Redirect(http.StatusSeeOther, closeURL(*q))
	}

	page.Modal = newModalView(&modal, ds)
	return c.Render(http.StatusOK, "index.html", page)
}

// load fetches the dataset once for the request. ok is false when the client
// went away before loading finished; nothing is rendered then.
func (h *Handler) load(c echo.Context) (deck.Dataset, bool) {
	ctx := c.Request().Context()
	ds := h.manager.Load(ctx)
	if ctx.Err() != nil {
		h.log.DebugContext(ctx, "request cancelled before render", "path", c.Path())
		return deck.Dataset{}, false
	}

	return ds, true
}

func (h *Handler) studyPage(ds deck.Dataset) studyPage {
	sections := deck.Group(ds.Categories, ds.Questions)
	demo := defaultDemo
	if q := deck.DemoQuestion(ds); q != nil {
		demo = *q
	}

	return studyPage{
		Title:          pageTitle,
		Local:          ds.Source == deck.SourceFallback,
		Nav:            deck.NavSections(sections),
		Sections:       sections,
		Demo:           demo,
		HeroIntervalMs: heroInterval(h.hero),
	}
}

func newModalView(m *study.Modal, ds deck.Dataset) *modalView {
	q := m.Question()
	if q == nil {
		return nil
	}

	view := &modalView{
		Question: *q,
		Side:     m.Side().String(),
		Back:     m.Side() == study.Back,
		Listener: m.ListenerAttached(),
		CloseURL: closeURL(*q),
	}
	if c := ds.CategoryByID(q.CategoryID); c != nil {
		view.Category = c.Name
	}

	base := "/questions/" + url.PathEscape(q.ID)
	view.FlipURL = base
	if !view.Back {
		view.FlipURL += "?side=back"
	}
	view.EscapeURL = base + "?key=" + url.QueryEscape(study.KeyEscape)

	return view
}

// closeURL returns to the question's section on the study page.
func closeURL(q deck.Question) string {
	return indexPath + "#" + deck.Anchor(q.CategoryID)
}

func heroInterval(a study.AutoFlipper) int64 {
	if !a.Enabled() {
		return 0
	}
	return a.Interval().Milliseconds()
}
