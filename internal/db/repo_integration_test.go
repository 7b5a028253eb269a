package db

import (
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "integration tests skipped, test database is not available:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	} else {
		testDB = database
	}

	code := m.Run()

	if testDB != nil {
		if err := testDB.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
		}
	}

	os.Exit(code)
}

func TestEventByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	event, err := repo.EventByID(ctx, TestEventID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Summer wedding", event.Title)

	event, err = repo.EventByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParticipantAndInvite_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	p, err := repo.ParticipantByUser(ctx, TestEventID, TestHostUserID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, RoleHost, p.Role)

	p, err = repo.ParticipantByUser(ctx, TestOtherEventID, TestHostUserID)
	require.NoError(t, err)
	assert.Nil(t, p)

	invite, err := repo.InviteByToken(ctx, TestInviteToken)
	require.NoError(t, err)
	require.NotNil(t, invite)
	assert.Equal(t, TestEventID, invite.EventID)

	invite, err = repo.InviteByToken(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, invite)
}

func TestQuestions_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("AllQuestionsPublishedFirst", func(t *testing.T) {
		questions, err := repo.Questions(ctx, TestEventID, false)
		require.NoError(t, err)
		require.Len(t, questions, 5)

		seenDraft := false
		for _, q := range questions {
			if !q.IsPublished {
				seenDraft = true
				continue
			}
			assert.False(t, seenDraft, "published question %d listed after a draft", q.ID)
		}
		assert.Equal(t, 4, questions[3].ID)
		require.Len(t, questions[3].Askers, 1)
		assert.Equal(t, TestGuestUserID, questions[3].Askers[0].UserID)
	})

	t.Run("PublishedOnly", func(t *testing.T) {
		questions, err := repo.Questions(ctx, TestEventID, true)
		require.NoError(t, err)
		require.Len(t, questions, 3)
		for _, q := range questions {
			assert.True(t, q.IsPublished)
		}
	})

	t.Run("OtherEventIsEmpty", func(t *testing.T) {
		questions, err := repo.Questions(ctx, TestOtherEventID, false)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})
}

func TestMaxQuestionOrder_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)
	venue := 1

	tests := []struct {
		name       string
		published  bool
		categoryID *int
		want       int
	}{
		{name: "Category", published: true, categoryID: &venue, want: 2},
		{name: "Uncategorized", published: true, want: 0},
		{name: "Drafts", published: false, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.MaxQuestionOrder(ctx, TestEventID, tt.published, tt.categoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionLifecycle_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	order := 3
	q := &Question{EventID: TestEventID, QuestionText: "What time does it end?", DraftOrder: &order}
	require.NoError(t, repo.CreateQuestion(ctx, q))
	require.NotZero(t, q.ID)

	require.NoError(t, repo.SetAskers(ctx, q.ID, []int{TestGuestUserID, TestHostUserID, TestGuestUserID}))

	got, err := repo.QuestionByID(ctx, TestEventID, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Askers, 2)

	got.QuestionText = "When does it end?"
	require.NoError(t, repo.UpdateQuestion(ctx, got, Columns.Question.QuestionText))

	got, err = repo.QuestionByID(ctx, TestEventID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "When does it end?", got.QuestionText)

	require.NoError(t, repo.DeleteQuestion(ctx, got))
	got, err = repo.QuestionByID(ctx, TestEventID, q.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	categories, err := repo.Categories(ctx, TestEventID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Venue", categories[0].Name)
	assert.Equal(t, "Dress code", categories[1].Name)

	maxOrder, err := repo.MaxDisplayOrder(ctx, TestEventID)
	require.NoError(t, err)
	assert.Equal(t, 2, maxOrder)

	c := &QuestionCategory{EventID: TestEventID, Name: "Food", DisplayOrder: maxOrder + 1}
	require.NoError(t, repo.CreateCategory(ctx, c))

	c.Name = "Food and drinks"
	require.NoError(t, repo.UpdateCategory(ctx, c, Columns.QuestionCategory.Name))

	got, err := repo.CategoryByID(ctx, TestEventID, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Food and drinks", got.Name)

	got, err = repo.CategoryByID(ctx, TestOtherEventID, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteCategory_KeepsQuestions_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	category, err := repo.CategoryByID(ctx, TestEventID, 1)
	require.NoError(t, err)
	require.NotNil(t, category)

	require.NoError(t, repo.DeleteCategory(ctx, category))

	q, err := repo.QuestionByID(ctx, TestEventID, 1)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Nil(t, q.CategoryID)
	assert.True(t, q.IsPublished)
}

func TestRunInTransaction_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	err := repo.RunInTransaction(ctx, func(tx *Repository) error {
		q, err := tx.QuestionByID(ctx, TestEventID, 4)
		if err != nil {
			return err
		}
		q.QuestionText = "changed"
		return tx.UpdateQuestion(ctx, q, Columns.Question.QuestionText)
	})
	require.NoError(t, err)

	q, err := repo.QuestionByID(ctx, TestEventID, 4)
	require.NoError(t, err)
	assert.Equal(t, "changed", q.QuestionText)
}
