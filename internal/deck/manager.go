package deck

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
)

// Manager is the entry point used by the web, REST and RPC layers.
type Manager struct {
	provider   Provider
	loader     *Loader
	workspaces *cache.Cache
	log        *slog.Logger
}

func NewManager(provider Provider, workspaceTTL time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		provider:   provider,
		loader:     NewLoader(provider, logger),
		workspaces: cache.New(workspaceTTL, 2*workspaceTTL),
		log:        logger,
	}
}

// Remote reports whether a persistent store backs the manager.
func (m *Manager) Remote() bool {
	return m.provider.Remote()
}

func (m *Manager) Load(ctx context.Context) Dataset {
	return m.loader.Load(ctx)
}

func (m *Manager) Sections(ctx context.Context) ([]Section, []NavSection) {
	ds := m.Load(ctx)
	sections := Group(ds.Categories, ds.Questions)

	return sections, NavSections(sections)
}

// Authenticate grants access unconditionally without a remote store; otherwise the
// passcode must match an admin secret exactly.
func (m *Manager) Authenticate(ctx context.Context, passcode string) error {
	if !m.provider.Remote() {
		return nil
	}

	ok, err := m.provider.CheckPasscode(ctx, passcode)
	if err != nil {
		m.log.ErrorContext(ctx, "passcode check failed", "error", err)
		return ErrAccessDenied
	}
	if !ok {
		return ErrAccessDenied
	}

	return nil
}

// Workspace returns the admin projection for a session, loading it on first use.
// With a remote store every access reloads it, so edits made elsewhere and a
// recovered store are picked up. Every access extends its lifetime.
func (m *Manager) Workspace(ctx context.Context, sessionID string) *Workspace {
	if v, ok := m.workspaces.Get(sessionID); ok {
		ws := v.(*Workspace)
		if m.provider.Remote() {
			ws.Reload(m.loader.Load(ctx))
		}
		m.workspaces.SetDefault(sessionID, ws)
		return ws
	}

	ws := NewWorkspace(m.provider, m.loader.Load(ctx))
	if err := m.workspaces.Add(sessionID, ws, cache.DefaultExpiration); err != nil {
		if v, ok := m.workspaces.Get(sessionID); ok {
			return v.(*Workspace)
		}
	}

	return ws
}

// DropWorkspace forgets a session's projection.
func (m *Manager) DropWorkspace(sessionID string) {
	m.workspaces.Delete(sessionID)
}
