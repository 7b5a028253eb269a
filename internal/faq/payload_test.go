package faq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_QuestionOrder(t *testing.T) {
	s := newScenarioStore()
	require.NoError(t, s.Move(1, Drafts))
	require.NoError(t, s.InsertInto(Uncategorized, Question{ID: 5, IsPublished: true}, 0))

	order := s.QuestionOrder()
	assert.Equal(t, []QuestionOrderItem{
		{QuestionID: 2, IsPublished: true, CategoryID: intPtr(1), PublishedOrder: intPtr(1)},
		{QuestionID: 3, IsPublished: true, CategoryID: intPtr(2), PublishedOrder: intPtr(1)},
		{QuestionID: 5, IsPublished: true, PublishedOrder: intPtr(1)},
		{QuestionID: 4, DraftOrder: intPtr(1)},
		{QuestionID: 1, DraftOrder: intPtr(2)},
	}, order.Items)
}

func TestQuestionOrder_WireFormat(t *testing.T) {
	s := NewStore(nil, []Question{draft(7, 1)})

	raw, err := json.Marshal(s.QuestionOrder())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"question_id":7,"is_published":false,"category_id":null,"published_order":null,"draft_order":1}]}`, string(raw))

	raw, err = json.Marshal(NewStore([]Category{{ID: 3, DisplayOrder: 9}}, nil).CategoryOrder())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"category_id":3,"display_order":1}]}`, string(raw))
}

func TestStore_ApplyQuestionOrder(t *testing.T) {
	t.Run("RoundTripYieldsEqualStore", func(t *testing.T) {
		categories := []Category{{ID: 1, DisplayOrder: 1}, {ID: 2, DisplayOrder: 2}}
		questions := []Question{published(1, 1, 1), published(2, 1, 2), published(3, 2, 1), draft(4, 1), draft(5, 2)}

		edited := NewStore(categories, questions)
		ctl := NewController(edited)
		ctl.DragEnd(DragEndEvent{Active: DragItem{ID: 1, ContainerID: "1"}, Over: &DropTarget{ContainerID: "drafts"}})
		ctl.DragEnd(DragEndEvent{Active: DragItem{ID: 5, ContainerID: "drafts"}, Over: &DropTarget{ID: 3, ContainerID: "2"}})
		ctl.DragEnd(DragEndEvent{Active: DragItem{ID: 1, ContainerID: "drafts"}, Over: &DropTarget{ID: 4, ContainerID: "drafts"}})
		require.NoError(t, edited.Move(2, Uncategorized))

		fresh := NewStore(categories, questions)
		require.NoError(t, fresh.ApplyQuestionOrder(edited.QuestionOrder()))

		assert.Equal(t, edited.Snapshot(), fresh.Snapshot())
		assert.Equal(t, edited.QuestionOrder(), fresh.QuestionOrder())
	})

	t.Run("UnmentionedQuestionsStayAfterMentioned", func(t *testing.T) {
		s := newScenarioStore()
		err := s.ApplyQuestionOrder(QuestionOrder{Items: []QuestionOrderItem{
			{QuestionID: 2, IsPublished: false, DraftOrder: intPtr(1)},
		}})
		require.NoError(t, err)

		drafts, _ := s.Questions(Drafts)
		assert.Equal(t, []int{2, 4}, ids(drafts))
		assertStoreDense(t, s)
	})

	t.Run("UnknownQuestionLeavesStoreUnchanged", func(t *testing.T) {
		s := newScenarioStore()
		before := s.Snapshot()

		err := s.ApplyQuestionOrder(QuestionOrder{Items: []QuestionOrderItem{
			{QuestionID: 1, DraftOrder: intPtr(1)},
			{QuestionID: 99, DraftOrder: intPtr(2)},
		}})
		assert.ErrorIs(t, err, ErrUnknownQuestion)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		s := newScenarioStore()
		err := s.ApplyQuestionOrder(QuestionOrder{Items: []QuestionOrderItem{
			{QuestionID: 1, IsPublished: true, CategoryID: intPtr(50), PublishedOrder: intPtr(1)},
		}})
		assert.ErrorIs(t, err, ErrUnknownContainer)
	})

	t.Run("DuplicateItem", func(t *testing.T) {
		s := newScenarioStore()
		err := s.ApplyQuestionOrder(QuestionOrder{Items: []QuestionOrderItem{
			{QuestionID: 4, DraftOrder: intPtr(1)},
			{QuestionID: 4, DraftOrder: intPtr(2)},
		}})
		assert.Error(t, err)
	})
}

func TestParseContainer(t *testing.T) {
	c, ok := ParseContainer(" 12 ")
	require.True(t, ok)
	id, isCat := c.CategoryID()
	assert.True(t, isCat)
	assert.Equal(t, 12, id)
	assert.Equal(t, "12", c.String())

	c, ok = ParseContainer("DRAFTS")
	require.True(t, ok)
	assert.Equal(t, Drafts, c)
	assert.False(t, c.Published())

	_, isCat = Uncategorized.CategoryID()
	assert.False(t, isCat)
	assert.True(t, Container{}.IsZero())
}
