package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("OrphanedQuestionIsDropped", func(t *testing.T) {
		categories := []Category{{ID: "c1", Name: "X", SortOrder: 1}}
		questions := []Question{
			{ID: "q1", CategoryID: "c1"},
			{ID: "q2", CategoryID: "missing"},
		}

		sections := Group(categories, questions)
		require.Len(t, sections, 1)
		assert.Equal(t, "c1", sections[0].Category.ID)
		assert.Equal(t, "category-c1", sections[0].Anchor)
		require.Len(t, sections[0].Questions, 1)
		assert.Equal(t, "q1", sections[0].Questions[0].ID)
	})

	t.Run("EmptyCategoriesAreDropped", func(t *testing.T) {
		categories := []Category{
			{ID: "a", Name: "A", SortOrder: 1},
			{ID: "b", Name: "B", SortOrder: 2},
			{ID: "c", Name: "C", SortOrder: 3},
		}
		questions := []Question{{ID: "q1", CategoryID: "c"}, {ID: "q2", CategoryID: "a"}}

		sections := Group(categories, questions)
		require.Len(t, sections, 2)
		assert.Equal(t, "a", sections[0].Category.ID)
		assert.Equal(t, "c", sections[1].Category.ID)
	})

	t.Run("QuestionOrderIsPreserved", func(t *testing.T) {
		categories := []Category{{ID: "a", Name: "A"}}
		questions := []Question{
			{ID: "newest", CategoryID: "a"},
			{ID: "other", CategoryID: ""},
			{ID: "middle", CategoryID: "a"},
			{ID: "oldest", CategoryID: "a"},
		}

		sections := Group(categories, questions)
		require.Len(t, sections, 1)
		ids := make([]string, 0, 3)
		for _, q := range sections[0].Questions {
			ids = append(ids, q.ID)
		}
		assert.Equal(t, []string{"newest", "middle", "oldest"}, ids)
	})

	t.Run("NothingToGroup", func(t *testing.T) {
		assert.Empty(t, Group(nil, nil))
		assert.Empty(t, Group([]Category{{ID: "a"}}, nil))
	})

	t.Run("FallbackDataset", func(t *testing.T) {
		ds := Fallback()
		sections := Group(ds.Categories, ds.Questions)
		require.Len(t, sections, 4)
		for _, s := range sections {
			assert.Len(t, s.Questions, 3)
		}
	})
}

func TestNavSections(t *testing.T) {
	sections := []Section{
		{Category: Category{ID: "a", Name: "Alpha"}, Anchor: Anchor("a")},
		{Category: Category{ID: "b", Name: "Beta"}, Anchor: Anchor("b")},
	}

	nav := NavSections(sections)
	assert.Equal(t, []NavSection{
		{ID: "home", Label: "HOME"},
		{ID: "category-a", Label: "Alpha"},
		{ID: "category-b", Label: "Beta"},
	}, nav)

	assert.Equal(t, []NavSection{{ID: "home", Label: "HOME"}}, NavSections(nil))
}

func TestDemoQuestion(t *testing.T) {
	t.Run("PrefersProductCategoryByName", func(t *testing.T) {
		ds := Dataset{
			Categories: []Category{{ID: "x", Name: "Other"}, {ID: "p", Name: "产品思维"}},
			Questions:  []Question{{ID: "q1", CategoryID: "x"}, {ID: "q2", CategoryID: "p"}},
		}
		q := DemoQuestion(ds)
		require.NotNil(t, q)
		assert.Equal(t, "q2", q.ID)
	})

	t.Run("DefaultsToProductCategoryID", func(t *testing.T) {
		ds := Dataset{
			Questions: []Question{{ID: "q1", CategoryID: "x"}, {ID: "q2", CategoryID: "cat-product"}},
		}
		q := DemoQuestion(ds)
		require.NotNil(t, q)
		assert.Equal(t, "q2", q.ID)
	})

	t.Run("FirstQuestionOtherwise", func(t *testing.T) {
		ds := Dataset{Questions: []Question{{ID: "q1", CategoryID: "x"}}}
		q := DemoQuestion(ds)
		require.NotNil(t, q)
		assert.Equal(t, "q1", q.ID)
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		assert.Nil(t, DemoQuestion(Dataset{}))
	})
}
