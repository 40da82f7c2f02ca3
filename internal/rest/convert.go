package rest

import "github.com/daniilsolovey/interview-deck/internal/deck"

func Map[From, To any](list []From, converter func(From) To) []To {
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

func NewSection(s deck.Section) Section {
	return Section{
		Anchor:    s.Anchor,
		Category:  NewCategory(s.Category),
		Questions: NewQuestions(s.Questions),
	}
}

func NewNavSection(n deck.NavSection) NavSection {
	return NavSection{
		ID:    n.ID,
		Label: n.Label,
	}
}

func NewSections(ds deck.Dataset) Sections {
	sections := deck.Group(ds.Categories, ds.Questions)

	return Sections{
		Source:   ds.Source,
		Sections: Map(sections, NewSection),
		Nav:      Map(deck.NavSections(sections), NewNavSection),
	}
}
