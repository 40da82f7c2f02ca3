package rpc

import "github.com/daniilsolovey/interview-deck/internal/deck"

func mapList[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c deck.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
	}
}

func NewCategories(in []deck.Category) []Category {
	return mapList(in, NewCategory)
}

func NewQuestion(q deck.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func NewQuestions(in []deck.Question) []Question {
	return mapList(in, NewQuestion)
}

func NewSections(ds deck.Dataset) Sections {
	sections := deck.Group(ds.Categories, ds.Questions)

	return Sections{
		Source: ds.Source,
		Sections: mapList(sections, func(s deck.Section) Section {
			return Section{
				Anchor:    s.Anchor,
				Category:  NewCategory(s.Category),
				Questions: NewQuestions(s.Questions),
			}
		}),
		Nav: mapList(deck.NavSections(sections), func(n deck.NavSection) NavSection {
			return NavSection{ID: n.ID, Label: n.Label}
		}),
	}
}
