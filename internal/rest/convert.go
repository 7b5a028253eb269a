package rest

import "github.com/partyplan/faq/internal/eventfaq"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewQuestion(q eventfaq.Question) Question {
	return Question{
		ID:             q.ID,
		EventID:        q.EventID,
		QuestionText:   q.QuestionText,
		AnswerText:     q.AnswerText,
		CategoryID:     q.CategoryID,
		IsPublished:    q.IsPublished,
		PublishedOrder: q.PublishedOrder,
		DraftOrder:     q.DraftOrder,
		UserID:         q.UserID,
		AskerUserIDs:   q.AskerUserIDs,
	}
}

func NewCategory(c eventfaq.Category) Category {
	return Category{
		ID:           c.ID,
		EventID:      c.EventID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r QuestionCreateRequest) ToManager() eventfaq.QuestionCreate {
	in := eventfaq.QuestionCreate{
		QuestionText: r.QuestionText,
		AnswerText:   r.AnswerText,
		CategoryID:   r.CategoryID,
		IsPublished:  r.IsPublished,
	}
	if r.InviteToken != nil {
		in.InviteToken = *r.InviteToken
	}
	return in
}

func (r QuestionUpdateRequest) ToManager() eventfaq.QuestionUpdate {
	return eventfaq.QuestionUpdate{
		QuestionText: r.QuestionText,
		AnswerText:   r.AnswerText,
		AskerUserIDs: r.AskerUserIDs,
	}
}
