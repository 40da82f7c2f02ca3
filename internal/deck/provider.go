package deck

import "context"

// Provider is the data source chosen once at startup: the remote store when one
// is configured, the built-in dataset otherwise.
type Provider interface {
	// Remote reports whether writes and passcode checks reach a persistent store.
	Remote() bool
	// Categories are sorted by sort_order ascending.
	Categories(ctx context.Context) ([]Category, error)
	// Questions are sorted by created_at descending.
	Questions(ctx context.Context) ([]Question, error)
	CheckPasscode(ctx context.Context, passcode string) (bool, error)
	// Publish stores p atomically and returns it with store-assigned ids.
	Publish(ctx context.Context, p Publication) (Publication, error)
}

// Publication is one admin publish: an optional new category and the question
// to insert (empty ID) or update.
type Publication struct {
	NewCategory *Category
	Question    Question
}
