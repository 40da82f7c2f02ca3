package rest

import "time"

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type Question struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	CategoryID string     `json:"categoryId"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type Section struct {
	Anchor    string     `json:"anchor"`
	Category  Category   `json:"category"`
	Questions []Question `json:"questions"`
}

type NavSection struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Sections struct {
	Source   string       `json:"source"`
	Sections []Section    `json:"sections"`
	Nav      []NavSection `json:"nav"`
}

// QuestionFilter is decoded from the query string with urlstruct,
// so CategoryID is read from category_id.
type QuestionFilter struct {
	CategoryID string
}
