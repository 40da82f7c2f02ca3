package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/interview-deck/internal/db"
)

type RemoteProvider struct {
	db  *db.Repository
	log *slog.Logger
}

func NewRemoteProvider(repo *db.Repository, logger *slog.Logger) *RemoteProvider {
	return &RemoteProvider{
		db:  repo,
		log: logger,
	}
}

func (p *RemoteProvider) Remote() bool {
	return true
}

func (p *RemoteProvider) Categories(ctx context.Context) ([]Category, error) {
	list, err := p.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (p *RemoteProvider) Questions(ctx context.Context) ([]Question, error) {
	list, err := p.db.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get questions: %w", err)
	}

	return NewQuestions(list), nil
}

func (p *RemoteProvider) CheckPasscode(ctx context.Context, passcode string) (bool, error) {
	secret, err := p.db.AdminSecretByPasscode(ctx, passcode)
	if err != nil {
		return false, fmt.Errorf("db get admin secret: %w", err)
	}

	return secret != nil, nil
}

// Publish writes the category and the question in one transaction, so a failed
// question write leaves no unused category behind. A category the caller did not
// know about yet is matched by name against the store instead of inserted twice.
func (p *RemoteProvider) Publish(ctx context.Context, pub Publication) (Publication, error) {
	var out Publication

	err := p.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		question := pub.Question

		if pub.NewCategory != nil {
			category, err := p.resolveCategory(ctx, tx, *pub.NewCategory)
			if err != nil {
				return err
			}

			resolved := NewCategory(category)
			out.NewCategory = &resolved
			question.CategoryID = resolved.ID
		}

		row := dbQuestion(question)
		if row.ID == "" {
			if err := tx.AddQuestion(ctx, row); err != nil {
				return err
			}
		} else {
			ok, err := tx.UpdateQuestion(ctx, row)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotFound
			}
		}

		out.Question = NewQuestion(row)
		return nil
	})
	if err != nil {
		return Publication{}, fmt.Errorf("db publish: %w", err)
	}

	p.log.InfoContext(ctx, "question published",
		"questionId", out.Question.ID,
		"categoryId", out.Question.CategoryID,
		"newCategory", out.NewCategory != nil,
	)

	return out, nil
}

// resolveCategory returns the stored category named like c, inserting it after the
// last sort position when none exists.
func (p *RemoteProvider) resolveCategory(ctx context.Context, tx *db.Repository, c Category) (*db.Category, error) {
	existing, err := tx.CategoryByName(ctx, c.Name)
	if err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	count, err := tx.CountCategories(ctx)
	if err != nil {
		return nil, err
	}

	category := dbCategory(c)
	category.ID = ""
	category.SortOrder = count + 1
	if err := tx.AddCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
