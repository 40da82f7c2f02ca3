package study

import "github.com/daniilsolovey/interview-deck/internal/deck"

const KeyEscape = "Escape"

// Modal shows at most one question at a time.
type Modal struct {
	question *deck.Question
	card     FlipCard
}

// Open shows q front side up, replacing any question already shown.
func (m *Modal) Open(q deck.Question) {
	m.question = &q
	m.card.Reset()
}

func (m *Modal) Active() bool {
	return m.question != nil
}

func (m *Modal) Question() *deck.Question {
	return m.question
}

func (m *Modal) Side() Side {
	return m.card.Side()
}

// Flip is a no-op while the modal is closed.
func (m *Modal) Flip() {
	if !m.Active() {
		return
	}
	m.card.Flip()
}

func (m *Modal) Close() {
	m.question = nil
	m.card.Reset()
}

// HandleKey closes the modal on Escape. Reports whether the key was consumed.
func (m *Modal) HandleKey(key string) bool {
	if !m.Active() || key != KeyEscape {
		return false
	}
	m.Close()
	return true
}

// ListenerAttached reports whether the page needs its keyboard handler.
func (m *Modal) ListenerAttached() bool {
	return m.Active()
}
