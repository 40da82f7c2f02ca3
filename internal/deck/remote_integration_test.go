//go:build integration

package deck

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/interview-deck/internal/db"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func newRemote(t *testing.T) *RemoteProvider {
	t.Helper()

	t.Cleanup(func() {
		require.NoError(t, db.LoadTestData(context.Background(), testDB))
	})
	return NewRemoteProvider(db.New(testDB), noOpLogger())
}

func TestRemoteProvider_Load(t *testing.T) {
	ds := NewLoader(newRemote(t), noOpLogger()).Load(context.Background())

	assert.Equal(t, SourceRemote, ds.Source)
	require.Len(t, ds.Categories, 3)
	assert.Equal(t, "c-product", ds.Categories[0].ID)
	require.Len(t, ds.Questions, 4)
	assert.Equal(t, "q-1", ds.Questions[0].ID)

	sections := Group(ds.Categories, ds.Questions)
	require.Len(t, sections, 2)
	assert.Len(t, sections[0].Questions, 2)
}

func TestRemoteProvider_CheckPasscode(t *testing.T) {
	p := newRemote(t)
	ctx := context.Background()

	ok, err := p.CheckPasscode(ctx, db.TestPasscode)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.CheckPasscode(ctx, "OPEN-SESAME")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoteProvider_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("NewCategoryAndQuestion", func(t *testing.T) {
		p := newRemote(t)
		ws := NewWorkspace(p, NewLoader(p, noOpLogger()).Load(ctx))

		q, err := ws.Publish(ctx, Draft{CategoryName: "Ops", Question: "On call?", Answer: "Yes."})
		require.NoError(t, err)
		assert.NotEmpty(t, q.ID)
		require.NotNil(t, q.CreatedAt)

		stored, err := db.New(testDB).QuestionByID(ctx, q.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, q.CategoryID, stored.CategoryID)

		categories, err := db.New(testDB).Categories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 4)
		assert.Equal(t, "Ops", categories[3].Name)
		assert.Equal(t, 4, categories[3].SortOrder)
	})

	t.Run("StaleWorkspaceReusesStoredCategory", func(t *testing.T) {
		p := newRemote(t)
		stale := NewWorkspace(p, NewLoader(p, noOpLogger()).Load(ctx))
		other := NewWorkspace(p, NewLoader(p, noOpLogger()).Load(ctx))

		first, err := other.Publish(ctx, Draft{CategoryName: "Ops", Question: "Pager?", Answer: "Yes."})
		require.NoError(t, err)

		second, err := stale.Publish(ctx, Draft{CategoryName: "Ops", Question: "Runbook?", Answer: "Wiki."})
		require.NoError(t, err)
		assert.Equal(t, first.CategoryID, second.CategoryID)
		assert.Len(t, stale.Categories(), 4)

		categories, err := db.New(testDB).Categories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 4)
	})

	t.Run("UnknownQuestionRollsBackCategory", func(t *testing.T) {
		p := newRemote(t)

		_, err := p.Publish(ctx, Publication{
			NewCategory: &Category{Name: "Ghost", SortOrder: 9},
			Question:    Question{ID: "missing", Question: "Q", Answer: "A"},
		})
		require.ErrorIs(t, err, ErrNotFound)

		categories, err := db.New(testDB).Categories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 3)
	})

	t.Run("Update", func(t *testing.T) {
		p := newRemote(t)
		ws := NewWorkspace(p, NewLoader(p, noOpLogger()).Load(ctx))

		q, err := ws.Publish(ctx, Draft{QuestionID: "q-2", CategoryName: "Product", Question: "Moved", Answer: "Here."})
		require.NoError(t, err)
		assert.Equal(t, "q-2", q.ID)
		assert.Equal(t, "c-product", q.CategoryID)

		stored, err := db.New(testDB).QuestionByID(ctx, "q-2")
		require.NoError(t, err)
		assert.Equal(t, "Moved", stored.Question)
		assert.Equal(t, "c-product", stored.CategoryID)
	})
}
