package deck

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Loader fetches both collections as one all-or-nothing snapshot.
type Loader struct {
	provider Provider
	log      *slog.Logger
}

func NewLoader(provider Provider, logger *slog.Logger) *Loader {
	return &Loader{
		provider: provider,
		log:      logger,
	}
}

// Load never fails: when the provider is not remote, or either fetch fails,
// the whole fallback dataset is returned instead of a partial mix.
func (l *Loader) Load(ctx context.Context) Dataset {
	if !l.provider.Remote() {
		return Fallback()
	}

	var (
		categories []Category
		questions  []Question
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := l.provider.Categories(gctx)
		categories = list
		return err
	})
	g.Go(func() error {
		list, err := l.provider.Questions(gctx)
		questions = list
		return err
	})

	if err := g.Wait(); err != nil {
		l.log.WarnContext(ctx, "load from store failed, serving fallback dataset", "error", err)
		return Fallback()
	}

	if categories == nil {
		categories = []Category{}
	}
	if questions == nil {
		questions = []Question{}
	}

	return Dataset{
		Categories: categories,
		Questions:  questions,
		Source:     SourceRemote,
	}
}
