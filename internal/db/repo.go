package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrAmbiguousSecret is returned when a passcode matches more than one admin secret.
var ErrAmbiguousSecret = errors.New("passcode matches more than one admin secret")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction calls fn with a repository bound to a single transaction.
// The transaction is rolled back when fn returns an error.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(*Repository) error) error {
	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// Categories returns all categories sorted by sort_order ASC.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."sort_order" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// Questions returns all questions sorted by created_at DESC.
func (r *Repository) Questions(ctx context.Context) ([]Question, error) {
	var questions []Question
	err := r.db.ModelContext(ctx, &questions).
		OrderExpr(`"t"."created_at" DESC NULLS LAST`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	return questions, nil
}

func (r *Repository) QuestionByID(ctx context.Context, id string) (*Question, error) {
	question := &Question{}
	err := r.db.ModelContext(ctx, question).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}

	return question, nil
}

// CategoryByName returns the category with exactly this name, or nil, nil.
func (r *Repository) CategoryByName(ctx context.Context, name string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."name" = ?`, name).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return category, nil
}

func (r *Repository) CountCategories(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Category)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// AdminSecretByPasscode looks up the secret with exactly this passcode.
// Returns nil, nil when nothing matches.
func (r *Repository) AdminSecretByPasscode(ctx context.Context, passcode string) (*AdminSecret, error) {
	var secrets []AdminSecret
	err := r.db.ModelContext(ctx, &secrets).
		Column("t.id").
		Where(`"t"."passcode" = ?`, passcode).
		Limit(2).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query admin secrets: %w", err)
	}

	switch len(secrets) {
	case 0:
		return nil, nil
	case 1:
		return &secrets[0], nil
	default:
		return nil, ErrAmbiguousSecret
	}
}

// AddCategory inserts c and fills the store-assigned id.
func (r *Repository) AddCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ModelContext(ctx, c).
		Returning("*").
		Insert()

	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// AddQuestion inserts q and fills the store-assigned id and timestamps.
func (r *Repository) AddQuestion(ctx context.Context, q *Question) error {
	_, err := r.db.ModelContext(ctx, q).
		Returning("*").
		Insert()

	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}

	return nil
}

// UpdateQuestion writes the editable columns of q. Returns false when no row has q.ID.
func (r *Repository) UpdateQuestion(ctx context.Context, q *Question) (bool, error) {
	res, err := r.db.ModelContext(ctx, q).
		Column(
			Columns.Question.Question,
			Columns.Question.Answer,
			Columns.Question.CategoryID,
			Columns.Question.UpdatedAt,
		).
		WherePK().
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to update question: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
