package web

import (
	"github.com/daniilsolovey/interview-deck/internal/deck"
)

// defaultDemo is shown on the hero card when the dataset has no questions.
var defaultDemo = deck.Question{
	ID:       "demo",
	Question: "**如何准备一场产品面试？**",
	Answer:   "1. 梳理项目经历\n2. 练习结构化表达\n3. 准备好要问面试官的问题",
}

type studyPage struct {
	Title          string
	Local          bool
	Notice         string
	Nav            []deck.NavSection
	Sections       []deck.Section
	Demo           deck.Question
	HeroIntervalMs int64
	Modal          *modalView
}

type modalView struct {
	Question  deck.Question
	Category  string
	Side      string
	Back      bool
	Listener  bool
	CloseURL  string
	FlipURL   string
	EscapeURL string
}

type loginPage struct {
	Title string
	Error string
}

type adminPage struct {
	Title      string
	Local      bool
	Items      []deck.ListItem
	Categories []deck.Category
	Draft      deck.Draft
	Published  bool
	SuccessMs  int64
	Error      string
}
