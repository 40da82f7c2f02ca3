package deck

import (
	"errors"
	"time"
)

const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

var (
	ErrValidation       = errors.New("question, answer and category are required")
	ErrNotFound         = errors.New("question not found")
	ErrStoreUnavailable = errors.New("database connection unavailable")
	ErrAccessDenied     = errors.New("access denied")
)

type Category struct {
	ID        string
	Name      string
	SortOrder int
}

type Question struct {
	ID         string
	Question   string
	Answer     string
	CategoryID string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

// Touched returns updated_at, falling back to created_at. Zero when neither is set.
func (q Question) Touched() time.Time {
	switch {
	case q.UpdatedAt != nil:
		return *q.UpdatedAt
	case q.CreatedAt != nil:
		return *q.CreatedAt
	default:
		return time.Time{}
	}
}

// Dataset is one consistent snapshot of both collections.
type Dataset struct {
	Categories []Category
	Questions  []Question
	Source     string
}

func (d Dataset) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			q := d.Questions[i]
			return &q
		}
	}
	return nil
}

func (d Dataset) CategoryByID(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			c := d.Categories[i]
			return &c
		}
	}
	return nil
}

// QuestionsInCategory keeps the dataset order.
func (d Dataset) QuestionsInCategory(categoryID string) []Question {
	result := make([]Question, 0)
	for _, q := range d.Questions {
		if q.CategoryID == categoryID {
			result = append(result, q)
		}
	}
	return result
}

func (d Dataset) clone() Dataset {
	return Dataset{
		Categories: append([]Category{}, d.Categories...),
		Questions:  append([]Question{}, d.Questions...),
		Source:     d.Source,
	}
}
