package eventfaq

import (
	"context"
	"sort"
	"sync"

	"github.com/partyplan/faq/internal/db"
)

const (
	eventID      = 1
	otherEventID = 2
	hostID       = 10
	guestID      = 20
	strangerID   = 30
	inviteToken  = "tok-1"
	otherToken   = "tok-2"
)

// memRepo is an in-memory Repository. Transactions snapshot the state and
// restore it when fn fails.
type memRepo struct {
	mu           sync.Mutex
	events       map[int]db.Event
	participants []db.Participant
	invites      []db.Invite
	questions    map[int]db.Question
	askers       map[int][]int
	categories   map[int]db.QuestionCategory
	nextID       int
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newMemRepo() *memRepo {
	r := &memRepo{
		events: map[int]db.Event{
			eventID:      {ID: eventID, Title: "Summer wedding"},
			otherEventID: {ID: otherEventID, Title: "Office party"},
		},
		participants: []db.Participant{
			{EventID: eventID, UserID: hostID, Role: db.RoleHost},
			{EventID: eventID, UserID: guestID, Role: db.RoleGuest},
		},
		invites: []db.Invite{
			{ID: 1, EventID: eventID, Token: inviteToken},
			{ID: 2, EventID: otherEventID, Token: otherToken},
		},
		questions: map[int]db.Question{},
		askers:    map[int][]int{},
		categories: map[int]db.QuestionCategory{
			1: {ID: 1, EventID: eventID, Name: "Venue", DisplayOrder: 1},
			2: {ID: 2, EventID: eventID, Name: "Dress code", DisplayOrder: 2},
		},
		nextID: 100,
	}

	for _, q := range []db.Question{
		{ID: 1, QuestionText: "Where is parking?", AnswerText: strPtr("Behind the hall"), CategoryID: intPtr(1), IsPublished: true, PublishedOrder: intPtr(1)},
		{ID: 2, QuestionText: "Is there a shuttle?", AnswerText: strPtr("Every 30 minutes"), CategoryID: intPtr(1), IsPublished: true, PublishedOrder: intPtr(2)},
		{ID: 3, QuestionText: "Can I wear jeans?", AnswerText: strPtr("Smart casual"), CategoryID: intPtr(2), IsPublished: true, PublishedOrder: intPtr(1)},
		{ID: 4, QuestionText: "Can I bring my dog?", DraftOrder: intPtr(1)},
		{ID: 5, QuestionText: "Is there vegan food?", AnswerText: strPtr("Yes"), DraftOrder: intPtr(2)},
	} {
		q.EventID = eventID
		r.questions[q.ID] = q
	}
	r.askers[4] = []int{guestID}

	return r
}

func (r *memRepo) question(id int) db.Question {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.questions[id]
}

func (r *memRepo) EventByID(_ context.Context, id int) (*db.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *memRepo) ParticipantByUser(_ context.Context, eventID, userID int) (*db.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.participants {
		if p.EventID == eventID && p.UserID == userID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memRepo) InviteByToken(_ context.Context, token string) (*db.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invites {
		if inv.Token == token {
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *memRepo) withAskers(q db.Question) db.Question {
	q.Askers = nil
	for _, id := range r.askers[q.ID] {
		q.Askers = append(q.Askers, db.QuestionAsker{QuestionID: q.ID, UserID: id})
	}
	return q
}

func (r *memRepo) Questions(_ context.Context, eventID int, publishedOnly bool) ([]db.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []db.Question
	for _, q := range r.questions {
		if q.EventID != eventID || (publishedOnly && !q.IsPublished) {
			continue
		}
		out = append(out, r.withAskers(q))
	}

	key := func(p *int) int {
		if p == nil {
			return 1 << 30
		}
		return *p
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsPublished != b.IsPublished {
			return a.IsPublished
		}
		if key(a.PublishedOrder) != key(b.PublishedOrder) {
			return key(a.PublishedOrder) < key(b.PublishedOrder)
		}
		if key(a.DraftOrder) != key(b.DraftOrder) {
			return key(a.DraftOrder) < key(b.DraftOrder)
		}
		return a.ID < b.ID
	})

	return out, nil
}

func (r *memRepo) QuestionByID(_ context.Context, eventID, questionID int) (*db.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[questionID]
	if !ok || q.EventID != eventID {
		return nil, nil
	}
	q = r.withAskers(q)
	return &q, nil
}

func (r *memRepo) MaxQuestionOrder(_ context.Context, eventID int, published bool, categoryID *int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxOrder := 0
	for _, q := range r.questions {
		if q.EventID != eventID || q.IsPublished != published {
			continue
		}
		order := q.DraftOrder
		if published {
			if (categoryID == nil) != (q.CategoryID == nil) || (categoryID != nil && *categoryID != *q.CategoryID) {
				continue
			}
			order = q.PublishedOrder
		}
		if order != nil && *order > maxOrder {
			maxOrder = *order
		}
	}
	return maxOrder, nil
}

func (r *memRepo) CreateQuestion(_ context.Context, q *db.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	q.ID = r.nextID
	r.questions[q.ID] = *q
	return nil
}

func (r *memRepo) UpdateQuestion(_ context.Context, q *db.Question, _ ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *q
	stored.Askers = nil
	r.questions[q.ID] = stored
	return nil
}

func (r *memRepo) DeleteQuestion(_ context.Context, q *db.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.questions, q.ID)
	delete(r.askers, q.ID)
	return nil
}

func (r *memRepo) SetAskers(_ context.Context, questionID int, userIDs []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.askers[questionID] = append([]int(nil), userIDs...)
	return nil
}

func (r *memRepo) Categories(_ context.Context, eventID int) ([]db.QuestionCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []db.QuestionCategory
	for _, c := range r.categories {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memRepo) CategoryByID(_ context.Context, eventID, categoryID int) (*db.QuestionCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[categoryID]
	if !ok || c.EventID != eventID {
		return nil, nil
	}
	return &c, nil
}

func (r *memRepo) MaxDisplayOrder(_ context.Context, eventID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxOrder := 0
	for _, c := range r.categories {
		if c.EventID == eventID && c.DisplayOrder > maxOrder {
			maxOrder = c.DisplayOrder
		}
	}
	return maxOrder, nil
}

func (r *memRepo) CreateCategory(_ context.Context, c *db.QuestionCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = *c
	return nil
}

func (r *memRepo) UpdateCategory(_ context.Context, c *db.QuestionCategory, _ ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *memRepo) DeleteCategory(_ context.Context, c *db.QuestionCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, c.ID)
	for id, q := range r.questions {
		if q.CategoryID != nil && *q.CategoryID == c.ID {
			q.CategoryID = nil
			r.questions[id] = q
		}
	}
	return nil
}

func (r *memRepo) RunInTransaction(_ context.Context, fn func(tx Repository) error) error {
	r.mu.Lock()
	questions := make(map[int]db.Question, len(r.questions))
	for k, v := range r.questions {
		questions[k] = v
	}
	categories := make(map[int]db.QuestionCategory, len(r.categories))
	for k, v := range r.categories {
		categories[k] = v
	}
	askers := make(map[int][]int, len(r.askers))
	for k, v := range r.askers {
		askers[k] = v
	}
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.questions, r.categories, r.askers = questions, categories, askers
		r.mu.Unlock()
		return err
	}
	return nil
}

// memCache records calls so tests can tell hits from misses.
type memCache struct {
	mu          sync.Mutex
	data        map[int][]Question
	hits        int
	invalidated []int
}

func newMemCache() *memCache {
	return &memCache{data: map[int][]Question{}}
}

func (c *memCache) PublishedQuestions(_ context.Context, eventID int) ([]Question, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.data[eventID]
	if ok {
		c.hits++
	}
	return q, ok, nil
}

func (c *memCache) SetPublishedQuestions(_ context.Context, eventID int, questions []Question) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[eventID] = questions
	return nil
}

func (c *memCache) Invalidate(_ context.Context, eventID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, eventID)
	c.invalidated = append(c.invalidated, eventID)
	return nil
}
