package faqclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyplan/faq/internal/faq"
)

type fakeAPI struct {
	categories []faq.Category
	questions  []faq.Question

	// failures returned by the next calls, in order
	loadErrs        []error
	saveErr         error
	categorySaveErr error
	submitted       faq.Question

	loadCalls       int
	questionOrder   *faq.QuestionOrder
	onQuestionOrder func(faq.QuestionOrder)
	categoryOrder   *faq.CategoryOrder
}

func (f *fakeAPI) nextLoadErr() error {
	f.loadCalls++
	if len(f.loadErrs) == 0 {
		return nil
	}
	err := f.loadErrs[0]
	f.loadErrs = f.loadErrs[1:]
	return err
}

func (f *fakeAPI) Categories(context.Context, int) ([]faq.Category, error) {
	if err := f.nextLoadErr(); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeAPI) Questions(context.Context, int) ([]faq.Question, error) {
	return f.questions, nil
}

func (f *fakeAPI) SubmitQuestion(_ context.Context, eventID int, text string) (faq.Question, error) {
	q := f.submitted
	q.EventID = eventID
	q.Text = text
	return q, nil
}

func (f *fakeAPI) SaveQuestionOrder(_ context.Context, _ int, order faq.QuestionOrder) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.questionOrder = &order
	if f.onQuestionOrder != nil {
		f.onQuestionOrder(order)
	}
	return nil
}

func (f *fakeAPI) SaveCategoryOrder(_ context.Context, _ int, order faq.CategoryOrder) error {
	if f.categorySaveErr != nil {
		return f.categorySaveErr
	}
	f.categoryOrder = &order
	return nil
}

func intPtr(v int) *int { return &v }

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		categories: []faq.Category{
			{ID: 1, EventID: 1, Name: "Venue", DisplayOrder: 1},
			{ID: 2, EventID: 1, Name: "Dress code", DisplayOrder: 2},
		},
		questions: []faq.Question{
			{ID: 1, Text: "Where?", CategoryID: intPtr(1), IsPublished: true, PublishedOrder: intPtr(1)},
			{ID: 2, Text: "Parking?", CategoryID: intPtr(1), IsPublished: true, PublishedOrder: intPtr(2)},
			{ID: 3, Text: "Suit?", CategoryID: intPtr(2), IsPublished: true, PublishedOrder: intPtr(1)},
			{ID: 4, Text: "Kids?", DraftOrder: intPtr(1)},
		},
	}
}

func newTestEditor(api API) *Editor {
	e := NewEditor(api, 1, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.backoff = time.Millisecond
	return e
}

func questionIDs(list []faq.Question) []int {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

func categoryIDs(list []faq.Category) []int {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

// applyOrder returns questions with the placement fields of order applied.
func applyOrder(questions []faq.Question, order faq.QuestionOrder) []faq.Question {
	out := make([]faq.Question, len(questions))
	copy(out, questions)
	for _, item := range order.Items {
		for i := range out {
			if out[i].ID == item.QuestionID {
				out[i].IsPublished = item.IsPublished
				out[i].CategoryID = item.CategoryID
				out[i].PublishedOrder = item.PublishedOrder
				out[i].DraftOrder = item.DraftOrder
			}
		}
	}
	return out
}

func TestEditor_Load(t *testing.T) {
	t.Run("RetriesTemporaryFailures", func(t *testing.T) {
		api := newFakeAPI()
		api.loadErrs = []error{
			&APIError{StatusCode: http.StatusServiceUnavailable},
			errors.New("connection refused"),
		}

		e := newTestEditor(api)
		require.NoError(t, e.Load(context.Background()))
		assert.Equal(t, 3, api.loadCalls)

		snap := e.Snapshot()
		require.Len(t, snap.Categories, 2)
		assert.Equal(t, []int{1, 2}, questionIDs(snap.Categories[0].Questions))
		assert.Equal(t, []int{4}, questionIDs(snap.Drafts))
		assert.False(t, e.Dirty())
	})

	t.Run("ClientErrorIsNotRetried", func(t *testing.T) {
		api := newFakeAPI()
		api.loadErrs = []error{&APIError{StatusCode: http.StatusUnauthorized}}

		err := newTestEditor(api).Load(context.Background())
		assert.ErrorIs(t, err, ErrRequestFailed)
		assert.Equal(t, 1, api.loadCalls)
	})

	t.Run("GivesUpAfterRetries", func(t *testing.T) {
		api := newFakeAPI()
		for range loadRetries + 1 {
			api.loadErrs = append(api.loadErrs, &APIError{StatusCode: http.StatusBadGateway})
		}

		err := newTestEditor(api).Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, loadRetries+1, api.loadCalls)
	})
}

func TestEditor_DragAndSave(t *testing.T) {
	api := newFakeAPI()
	e := newTestEditor(api)
	require.NoError(t, e.Load(context.Background()))

	e.DragStart(faq.DragItem{ID: 1, ContainerID: "1"})
	out := e.DragEnd(faq.DragEndEvent{
		Active: faq.DragItem{ID: 1, ContainerID: "1"},
		Over:   &faq.DropTarget{ID: 4, ContainerID: faq.DraftsToken},
	})
	require.Equal(t, faq.Moved, out)
	assert.True(t, e.Dirty())

	require.NoError(t, e.MoveCategory(0, 1))

	require.NoError(t, e.Save(context.Background()))
	assert.False(t, e.Dirty())

	require.NotNil(t, api.questionOrder)
	assert.Equal(t, []faq.QuestionOrderItem{
		{QuestionID: 3, IsPublished: true, CategoryID: intPtr(2), PublishedOrder: intPtr(1)},
		{QuestionID: 2, IsPublished: true, CategoryID: intPtr(1), PublishedOrder: intPtr(1)},
		{QuestionID: 4, DraftOrder: intPtr(1)},
		{QuestionID: 1, DraftOrder: intPtr(2)},
	}, api.questionOrder.Items)

	require.NotNil(t, api.categoryOrder)
	assert.Equal(t, []faq.CategoryOrderItem{
		{CategoryID: 2, DisplayOrder: 1},
		{CategoryID: 1, DisplayOrder: 2},
	}, api.categoryOrder.Items)
}

func TestEditor_NoOpDragStaysClean(t *testing.T) {
	e := newTestEditor(newFakeAPI())
	require.NoError(t, e.Load(context.Background()))

	out := e.DragEnd(faq.DragEndEvent{Active: faq.DragItem{ID: 1, ContainerID: "1"}, Over: nil})
	assert.Equal(t, faq.NoOp, out)
	assert.False(t, e.Dirty())
}

func TestEditor_SaveFailure(t *testing.T) {
	t.Run("ReloadsServerState", func(t *testing.T) {
		api := newFakeAPI()
		e := newTestEditor(api)
		require.NoError(t, e.Load(context.Background()))
		before := e.Snapshot()

		require.NoError(t, e.Move(4, faq.Uncategorized))
		api.saveErr = &APIError{StatusCode: http.StatusBadRequest, Message: "Question 4 needs an answer before publishing"}

		err := e.Save(context.Background())
		assert.ErrorIs(t, err, ErrRequestFailed)
		assert.Nil(t, api.categoryOrder)

		assert.Equal(t, before, e.Snapshot())
		assert.False(t, e.Dirty())
	})

	t.Run("CategoryOrderFailsAfterQuestionOrder", func(t *testing.T) {
		api := newFakeAPI()
		e := newTestEditor(api)
		require.NoError(t, e.Load(context.Background()))

		require.NoError(t, e.Move(4, faq.Uncategorized))
		require.NoError(t, e.MoveCategory(0, 1))
		api.categorySaveErr = &APIError{StatusCode: http.StatusInternalServerError}
		// the server now holds the new question order
		api.onQuestionOrder = func(order faq.QuestionOrder) {
			api.questions = applyOrder(api.questions, order)
		}

		err := e.Save(context.Background())
		require.ErrorIs(t, err, ErrRequestFailed)
		assert.ErrorContains(t, err, "save category order")
		require.NotNil(t, api.questionOrder)
		assert.Nil(t, api.categoryOrder)

		snap := e.Snapshot()
		assert.False(t, e.Dirty())
		assert.Equal(t, []int{1, 2}, categoryIDs(snap.Categories))
		_, c, ok := e.Find(4)
		require.True(t, ok)
		assert.Equal(t, faq.Uncategorized, c)
	})

	t.Run("KeepsLocalEditsWhenReloadFails", func(t *testing.T) {
		api := newFakeAPI()
		e := newTestEditor(api)
		require.NoError(t, e.Load(context.Background()))

		require.NoError(t, e.Move(4, faq.Uncategorized))
		api.saveErr = errors.New("network down")
		api.loadErrs = []error{&APIError{StatusCode: http.StatusUnauthorized}}

		err := e.Save(context.Background())
		require.Error(t, err)

		_, c, ok := e.Find(4)
		require.True(t, ok)
		assert.Equal(t, faq.Uncategorized, c)
		assert.True(t, e.Dirty())
	})
}

func TestEditor_Ask(t *testing.T) {
	api := newFakeAPI()
	api.submitted = faq.Question{ID: 9, DraftOrder: intPtr(2)}
	e := newTestEditor(api)
	require.NoError(t, e.Load(context.Background()))

	q, err := e.Ask(context.Background(), "Dogs?")
	require.NoError(t, err)
	assert.Equal(t, "Dogs?", q.Text)

	assert.Equal(t, []int{4, 9}, questionIDs(e.Snapshot().Drafts))
	assert.False(t, e.Dirty())
}
