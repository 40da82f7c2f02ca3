package deck

import "github.com/daniilsolovey/interview-deck/internal/db"

func NewCategory(c *db.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewQuestion(q *db.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func NewQuestions(list []db.Question) []Question {
	result := make([]Question, len(list))
	for i := range list {
		result[i] = NewQuestion(&list[i])
	}
	return result
}

func dbCategory(c Category) *db.Category {
	return &db.Category{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
	}
}

func dbQuestion(q Question) *db.Question {
	return &db.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
