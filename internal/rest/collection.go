package rest

import "github.com/daniilsolovey/interview-deck/internal/deck"

type Categories []Category

func NewCategories(in []deck.Category) Categories {
	return Map(in, NewCategory)
}

type Questions []Question

func NewQuestions(in []deck.Question) Questions {
	return Map(in, NewQuestion)
}
