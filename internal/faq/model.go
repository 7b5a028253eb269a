package faq

// Question is a single FAQ entry. PublishedOrder is meaningful only while the
// question is published, DraftOrder only while it is a draft.
type Question struct {
	ID             int
	EventID        int
	Text           string
	Answer         *string
	CategoryID     *int
	IsPublished    bool
	PublishedOrder *int
	DraftOrder     *int
	UserID         *int
	AskerUserIDs   []int
}

// Order returns the order number relevant to the question's publication state.
func (q Question) Order() int {
	if q.IsPublished {
		return derefInt(q.PublishedOrder)
	}
	return derefInt(q.DraftOrder)
}

func (q Question) clone() Question {
	out := q
	out.Answer = cloneString(q.Answer)
	out.CategoryID = cloneInt(q.CategoryID)
	out.PublishedOrder = cloneInt(q.PublishedOrder)
	out.DraftOrder = cloneInt(q.DraftOrder)
	out.UserID = cloneInt(q.UserID)
	if q.AskerUserIDs != nil {
		out.AskerUserIDs = append([]int(nil), q.AskerUserIDs...)
	}
	return out
}

// Category owns the ordering of its questions.
type Category struct {
	ID           int
	EventID      int
	Name         string
	DisplayOrder int
	Questions    []Question
}

func (c Category) clone() Category {
	out := c
	out.Questions = cloneQuestions(c.Questions)
	return out
}

func cloneQuestions(list []Question) []Question {
	out := make([]Question, len(list))
	for i := range list {
		out[i] = list[i].clone()
	}
	return out
}

func intPtr(v int) *int { return &v }

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return intPtr(*p)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}
