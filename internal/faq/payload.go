package faq

import (
	"fmt"
	"sort"
)

// QuestionOrderItem is one row of the question order submitted to the backend.
type QuestionOrderItem struct {
	QuestionID     int  `json:"question_id"`
	IsPublished    bool `json:"is_published"`
	CategoryID     *int `json:"category_id"`
	PublishedOrder *int `json:"published_order"`
	DraftOrder     *int `json:"draft_order"`
}

type QuestionOrder struct {
	Items []QuestionOrderItem `json:"items"`
}

type CategoryOrderItem struct {
	CategoryID   int `json:"category_id"`
	DisplayOrder int `json:"display_order"`
}

type CategoryOrder struct {
	Items []CategoryOrderItem `json:"items"`
}

// QuestionOrder serializes every container: categories in display order, then
// the uncategorized pool, then drafts. Orders are list positions.
func (s *Store) QuestionOrder() QuestionOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]QuestionOrderItem, 0)
	for _, cat := range s.categories {
		for i, q := range cat.Questions {
			items = append(items, QuestionOrderItem{
				QuestionID:     q.ID,
				IsPublished:    true,
				CategoryID:     intPtr(cat.ID),
				PublishedOrder: intPtr(i + 1),
			})
		}
	}
	for i, q := range s.uncategorized {
		items = append(items, QuestionOrderItem{
			QuestionID:     q.ID,
			IsPublished:    true,
			PublishedOrder: intPtr(i + 1),
		})
	}
	for i, q := range s.drafts {
		items = append(items, QuestionOrderItem{
			QuestionID: q.ID,
			DraftOrder: intPtr(i + 1),
		})
	}

	return QuestionOrder{Items: items}
}

func (s *Store) CategoryOrder() CategoryOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]CategoryOrderItem, len(s.categories))
	for i, cat := range s.categories {
		items[i] = CategoryOrderItem{CategoryID: cat.ID, DisplayOrder: i + 1}
	}
	return CategoryOrder{Items: items}
}

// Container returns the container an order item places its question in.
func (it QuestionOrderItem) Container() Container {
	switch {
	case !it.IsPublished:
		return Drafts
	case it.CategoryID != nil:
		return CategoryContainer(*it.CategoryID)
	}
	return Uncategorized
}

// Order returns the order number relevant to the item's container.
func (it QuestionOrderItem) Order() int {
	if it.IsPublished {
		return derefInt(it.PublishedOrder)
	}
	return derefInt(it.DraftOrder)
}

// ApplyQuestionOrder rearranges the store according to a question order
// payload. Questions the payload does not mention stay in their container,
// after the mentioned ones. The store is unchanged when an error is returned.
func (s *Store) ApplyQuestionOrder(order QuestionOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	type placed struct {
		q     Question
		order int
		seq   int
	}

	byContainer := make(map[Container][]placed)
	mentioned := make(map[int]struct{}, len(order.Items))
	for seq, it := range order.Items {
		q, _, _, ok := s.find(it.QuestionID)
		if !ok {
			return fmt.Errorf("apply order: %w: %d", ErrUnknownQuestion, it.QuestionID)
		}
		c := it.Container()
		if _, ok := s.list(c); !ok {
			return fmt.Errorf("apply order to question %d: %w: %s", it.QuestionID, ErrUnknownContainer, c)
		}
		if _, dup := mentioned[it.QuestionID]; dup {
			return fmt.Errorf("apply order: question %d listed twice", it.QuestionID)
		}
		mentioned[it.QuestionID] = struct{}{}
		byContainer[c] = append(byContainer[c], placed{q: q, order: it.Order(), seq: seq})
	}

	containers := make([]Container, 0, len(s.categories)+2)
	for _, cat := range s.categories {
		containers = append(containers, CategoryContainer(cat.ID))
	}
	containers = append(containers, Uncategorized, Drafts)

	next := make(map[Container][]Question, len(containers))
	for _, c := range containers {
		rows := byContainer[c]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].order != rows[j].order {
				return rows[i].order < rows[j].order
			}
			return rows[i].seq < rows[j].seq
		})

		list := make([]Question, 0, len(rows))
		for _, r := range rows {
			list = append(list, r.q)
		}

		current, _ := s.list(c)
		for _, q := range current {
			if _, ok := mentioned[q.ID]; !ok {
				list = append(list, q)
			}
		}
		next[c] = Renumber(list, c)
	}

	for _, c := range containers {
		s.setList(c, next[c])
	}
	return nil
}
