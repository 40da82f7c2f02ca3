package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/interview-deck/internal/deck"
)

//go:generate zenrpc

// DeckService provides read-only RPC methods over the question deck.
type DeckService struct {
	zenrpc.Service
	manager *deck.Manager
}

func NewDeckService(manager *deck.Manager) *DeckService {
	return &DeckService{manager: manager}
}

// Categories retrieves all categories ordered by sortOrder.
//
//zenrpc:return list of categories
func (s DeckService) Categories(ctx context.Context) ([]Category, error) {
	ds := s.manager.Load(ctx)
	return NewCategories(ds.Categories), nil
}

// Questions retrieves questions sorted by createdAt DESC, optionally limited to one category.
//
//zenrpc:filter optional filter
//zenrpc:return list of questions
func (s DeckService) Questions(ctx context.Context, filter *QuestionFilter) ([]Question, error) {
	ds := s.manager.Load(ctx)
	if filter == nil || filter.CategoryID == "" {
		return NewQuestions(ds.Questions), nil
	}

	return NewQuestions(ds.QuestionsInCategory(filter.CategoryID)), nil
}

// Sections returns questions grouped by category together with the navigation entries.
//
//zenrpc:return sections in category order
func (s DeckService) Sections(ctx context.Context) (Sections, error) {
	return NewSections(s.manager.Load(ctx)), nil
}

// ByID retrieves a single question.
//
//zenrpc:id question ID
//zenrpc:return question
//zenrpc:400 id is required
//zenrpc:404 question not found
func (s DeckService) ByID(ctx context.Context, id string) (*Question, error) {
	if id == "" {
		return nil, zenrpc.NewStringError(400, "id is required")
	}

	q := s.manager.Load(ctx).QuestionByID(id)
	if q == nil {
		return nil, zenrpc.NewStringError(404, "question not found")
	}

	question := NewQuestion(*q)
	return &question, nil
}
