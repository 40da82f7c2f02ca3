package deck

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/interview-deck/internal/markdown"
)

// UncategorisedLabel is shown in the admin list for questions whose category is unknown.
const UncategorisedLabel = "未分类"

// Draft is the admin form. An empty QuestionID publishes a new question.
type Draft struct {
	QuestionID   string
	CategoryName string
	Question     string
	Answer       string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Question) == "" ||
		strings.TrimSpace(d.Answer) == "" ||
		strings.TrimSpace(d.CategoryName) == "" {
		return ErrValidation
	}
	return nil
}

type ListItem struct {
	Question     Question
	Label        string
	CategoryName string
}

// Workspace is an admin session's projection of the store. The projection only
// changes after the provider confirmed a write.
type Workspace struct {
	mu         sync.Mutex
	provider   Provider
	categories []Category
	questions  []Question
	source     string
	now        func() time.Time
}

func NewWorkspace(provider Provider, ds Dataset) *Workspace {
	ds = ds.clone()
	return &Workspace{
		provider:   provider,
		categories: ds.Categories,
		questions:  ds.Questions,
		source:     ds.Source,
		now:        time.Now,
	}
}

func (w *Workspace) Source() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.source
}

// Reload replaces the projection with a fresh snapshot of the store.
func (w *Workspace) Reload(ds Dataset) {
	ds = ds.clone()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.categories = ds.Categories
	w.questions = ds.Questions
	w.source = ds.Source
}

func (w *Workspace) Categories() []Category {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Category{}, w.categories...)
}

func (w *Workspace) Questions() []Question {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Question{}, w.questions...)
}

// List returns the questions most recently touched first.
func (w *Workspace) List() []ListItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]ListItem, len(w.questions))
	for i, q := range w.questions {
		name := UncategorisedLabel
		if c := w.categoryByID(q.CategoryID); c != nil {
			name = c.Name
		}
		items[i] = ListItem{
			Question:     q,
			Label:        markdown.Label(q.Question, markdown.LabelLimit),
			CategoryName: name,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Question.Touched().After(items[j].Question.Touched())
	})

	return items
}

// Draft returns the form contents for an existing question.
func (w *Workspace) Draft(questionID string) (Draft, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.questionIndex(questionID)
	if i < 0 {
		return Draft{}, false
	}

	q := w.questions[i]
	d := Draft{
		QuestionID: q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
	}
	if c := w.categoryByID(q.CategoryID); c != nil {
		d.CategoryName = c.Name
	}

	return d, true
}

// Publish validates d, resolves its category by exact name and writes through the
// provider. On any error the projection is left untouched. A remote workspace
// holding the built-in dataset refuses to publish with ErrStoreUnavailable.
func (w *Workspace) Publish(ctx context.Context, d Draft) (Question, error) {
	if err := d.Validate(); err != nil {
		return Question{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// ids of the built-in dataset do not exist in the store
	if w.provider.Remote() && w.source == SourceFallback {
		return Question{}, ErrStoreUnavailable
	}

	var pub Publication
	name := strings.TrimSpace(d.CategoryName)
	categoryID := ""
	for _, c := range w.categories {
		if c.Name == name {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		pub.NewCategory = &Category{
			Name:      name,
			SortOrder: len(w.categories) + 1,
		}
	}

	now := w.now().UTC()
	index := -1
	if d.QuestionID != "" {
		index = w.questionIndex(d.QuestionID)
		if index < 0 {
			return Question{}, ErrNotFound
		}

		q := w.questions[index]
		q.Question = d.Question
		q.Answer = d.Answer
		q.CategoryID = categoryID
		q.UpdatedAt = &now
		pub.Question = q
	} else {
		created := now
		pub.Question = Question{
			Question:   d.Question,
			Answer:     d.Answer,
			CategoryID: categoryID,
			CreatedAt:  &created,
			UpdatedAt:  &now,
		}
	}

	stored, err := w.provider.Publish(ctx, pub)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Question{}, err
		}
		return Question{}, fmt.Errorf("publish: %w", err)
	}

	if stored.NewCategory != nil && w.categoryByID(stored.NewCategory.ID) == nil {
		w.categories = append(w.categories, *stored.NewCategory)
	}

	if index >= 0 {
		w.questions[index] = stored.Question
	} else {
		w.questions = append([]Question{stored.Question}, w.questions...)
	}

	return stored.Question, nil
}

func (w *Workspace) questionIndex(id string) int {
	for i := range w.questions {
		if w.questions[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) categoryByID(id string) *Category {
	for i := range w.categories {
		if w.categories[i].ID == id {
			return &w.categories[i]
		}
	}
	return nil
}
