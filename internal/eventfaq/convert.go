package eventfaq

import (
	"github.com/partyplan/faq/internal/db"
	"github.com/partyplan/faq/internal/faq"
)

func NewQuestion(q *db.Question) Question {
	question := Question{Question: *q}
	question.Category = nil
	question.Askers = nil

	if len(q.Askers) > 0 {
		question.AskerUserIDs = make([]int, len(q.Askers))
		for i := range q.Askers {
			question.AskerUserIDs[i] = q.Askers[i].UserID
		}
	}

	return question
}

func NewQuestions(list []db.Question) []Question {
	out := make([]Question, len(list))
	for i := range list {
		out[i] = NewQuestion(&list[i])
	}
	return out
}

func NewCategory(c *db.QuestionCategory) Category {
	category := Category{QuestionCategory: *c}
	category.Event = nil
	return category
}

func NewCategories(list []db.QuestionCategory) []Category {
	out := make([]Category, len(list))
	for i := range list {
		out[i] = NewCategory(&list[i])
	}
	return out
}

// FAQ converts the question into the ordering model.
func (q Question) FAQ() faq.Question {
	return faq.Question{
		ID:             q.ID,
		EventID:        q.EventID,
		Text:           q.QuestionText,
		Answer:         q.AnswerText,
		CategoryID:     q.CategoryID,
		IsPublished:    q.IsPublished,
		PublishedOrder: q.PublishedOrder,
		DraftOrder:     q.DraftOrder,
		UserID:         q.UserID,
		AskerUserIDs:   q.AskerUserIDs,
	}
}

func (c Category) FAQ() faq.Category {
	return faq.Category{
		ID:           c.ID,
		EventID:      c.EventID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
	}
}

// NewStore builds the ordering model of one event.
func NewStore(categories []Category, questions []Question) *faq.Store {
	cc := make([]faq.Category, len(categories))
	for i := range categories {
		cc[i] = categories[i].FAQ()
	}

	qq := make([]faq.Question, len(questions))
	for i := range questions {
		qq[i] = questions[i].FAQ()
	}

	return faq.NewStore(cc, qq)
}

// applyPlacement copies the container and order fields of p onto q.
func applyPlacement(q *db.Question, p faq.Question) {
	q.IsPublished = p.IsPublished
	q.CategoryID = p.CategoryID
	q.PublishedOrder = p.PublishedOrder
	q.DraftOrder = p.DraftOrder
}

var placementColumns = []string{
	db.Columns.Question.IsPublished,
	db.Columns.Question.CategoryID,
	db.Columns.Question.PublishedOrder,
	db.Columns.Question.DraftOrder,
}
