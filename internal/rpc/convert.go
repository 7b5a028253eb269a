package rpc

import (
	"github.com/partyplan/faq/internal/eventfaq"
	"github.com/partyplan/faq/internal/faq"
)

func newList[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewQuestion(q eventfaq.Question) Question {
	return NewBoardQuestion(q.FAQ())
}

func NewBoardQuestion(q faq.Question) Question {
	asked := q.AskerUserIDs
	if asked == nil {
		asked = []int{}
	}

	return Question{
		ID:             q.ID,
		CategoryID:     q.CategoryID,
		QuestionText:   q.Text,
		AnswerText:     q.Answer,
		IsPublished:    q.IsPublished,
		PublishedOrder: q.PublishedOrder,
		DraftOrder:     q.DraftOrder,
		UserID:         q.UserID,
		AskerUserIDs:   asked,
	}
}

func NewCategory(c eventfaq.Category) Category {
	return Category{
		CategoryID:   c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewBoard(s faq.Snapshot) Board {
	return Board{
		Categories: newList(s.Categories, func(c faq.Category) BoardCategory {
			return BoardCategory{
				CategoryID:   c.ID,
				Name:         c.Name,
				DisplayOrder: c.DisplayOrder,
				Questions:    newList(c.Questions, NewBoardQuestion),
			}
		}),
		Uncategorized: newList(s.Uncategorized, NewBoardQuestion),
		Drafts:        newList(s.Drafts, NewBoardQuestion),
	}
}

func (i QuestionOrderItem) ToModel() faq.QuestionOrderItem {
	return faq.QuestionOrderItem{
		QuestionID:     i.QuestionID,
		IsPublished:    i.IsPublished,
		CategoryID:     i.CategoryID,
		PublishedOrder: i.PublishedOrder,
		DraftOrder:     i.DraftOrder,
	}
}

func (i CategoryOrderItem) ToModel() faq.CategoryOrderItem {
	return faq.CategoryOrderItem{
		CategoryID:   i.CategoryID,
		DisplayOrder: i.DisplayOrder,
	}
}
