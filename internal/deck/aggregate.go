package deck

const (
	HomeAnchor = "home"
	HomeLabel  = "HOME"

	// demoCategoryName is the category the hero demo card prefers.
	demoCategoryName = "产品思维"
	demoCategoryID   = "cat-product"
)

type Section struct {
	Category  Category
	Questions []Question
	Anchor    string
}

type NavSection struct {
	ID    string
	Label string
}

func Anchor(categoryID string) string {
	return "category-" + categoryID
}

// Group joins questions to categories. Categories keep their input order and are
// dropped when no question references them; questions referencing unknown
// categories are dropped too.
func Group(categories []Category, questions []Question) []Section {
	byCategory := make(map[string][]Question, len(categories))
	for _, q := range questions {
		if q.CategoryID == "" {
			continue
		}
		byCategory[q.CategoryID] = append(byCategory[q.CategoryID], q)
	}

	sections := make([]Section, 0, len(categories))
	for _, c := range categories {
		list := byCategory[c.ID]
		if len(list) == 0 {
			continue
		}

		sections = append(sections, Section{
			Category:  c,
			Questions: list,
			Anchor:    Anchor(c.ID),
		})
	}

	return sections
}

func NavSections(sections []Section) []NavSection {
	nav := make([]NavSection, 0, len(sections)+1)
	nav = append(nav, NavSection{ID: HomeAnchor, Label: HomeLabel})
	for _, s := range sections {
		nav = append(nav, NavSection{ID: s.Anchor, Label: s.Category.Name})
	}
	return nav
}

// DemoQuestion picks the hero card question. Returns nil for an empty dataset.
func DemoQuestion(d Dataset) *Question {
	categoryID := demoCategoryID
	for _, c := range d.Categories {
		if c.Name == demoCategoryName {
			categoryID = c.ID
			break
		}
	}

	for i := range d.Questions {
		if d.Questions[i].CategoryID == categoryID {
			q := d.Questions[i]
			return &q
		}
	}

	if len(d.Questions) > 0 {
		q := d.Questions[0]
		return &q
	}

	return nil
}
