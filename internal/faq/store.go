package faq

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownContainer = errors.New("unknown container")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// Store is the in-memory FAQ of one event: categories with their questions,
// the uncategorized published pool and the drafts. Mutations replace whole
// lists while holding the lock, readers always get a consistent copy.
type Store struct {
	mu            sync.RWMutex
	categories    []Category
	uncategorized []Question
	drafts        []Question
}

// NewStore builds a store from categories and questions as returned by the
// backend. Categories are sorted by display order and questions by their order
// field. A published question whose category is unknown lands in the
// uncategorized pool. Duplicate question ids keep the first occurrence.
func NewStore(categories []Category, questions []Question) *Store {
	cats := make([]Category, len(categories))
	for i := range categories {
		cats[i] = categories[i].clone()
		cats[i].Questions = nil
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})

	catIndex := make(map[int]int, len(cats))
	for i := range cats {
		catIndex[cats[i].ID] = i
	}

	sorted := cloneQuestions(questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	s := &Store{}
	seen := make(map[int]struct{}, len(sorted))
	for _, q := range sorted {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		seen[q.ID] = struct{}{}

		c := ContainerOf(q)
		if id, ok := c.CategoryID(); ok {
			if idx, known := catIndex[id]; known {
				cats[idx].Questions = append(cats[idx].Questions, q)
				continue
			}
			c = Uncategorized
		}

		if c.Kind() == KindDrafts {
			s.drafts = append(s.drafts, q)
		} else {
			s.uncategorized = append(s.uncategorized, q)
		}
	}

	for i := range cats {
		cats[i].DisplayOrder = i + 1
		cats[i].Questions = Renumber(cats[i].Questions, CategoryContainer(cats[i].ID))
	}
	s.categories = cats
	s.uncategorized = Renumber(s.uncategorized, Uncategorized)
	s.drafts = Renumber(s.drafts, Drafts)

	return s
}

// Snapshot is a deep copy of the store contents.
type Snapshot struct {
	Categories    []Category
	Uncategorized []Question
	Drafts        []Question
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := make([]Category, len(s.categories))
	for i := range s.categories {
		cats[i] = s.categories[i].clone()
	}

	return Snapshot{
		Categories:    cats,
		Uncategorized: cloneQuestions(s.uncategorized),
		Drafts:        cloneQuestions(s.drafts),
	}
}

// Questions returns a copy of the list held by container c.
func (s *Store) Questions(c Container) ([]Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.list(c)
	if !ok {
		return nil, false
	}
	return cloneQuestions(list), true
}

// Classify resolves drop-target metadata to a container held by this store.
func (s *Store) Classify(containerID string) (Container, bool) {
	c, ok := ParseContainer(containerID)
	if !ok {
		return Container{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, known := s.list(c); !known {
		return Container{}, false
	}
	return c, true
}

// FindQuestion scans categories in display order, then the uncategorized pool,
// then drafts, and returns the first question with the given id.
func (s *Store) FindQuestion(id int) (Question, Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, c, _, ok := s.find(id)
	if !ok {
		return Question{}, Container{}, false
	}
	return q.clone(), c, true
}

// RemoveFromAllContainers deletes the question from whichever list holds it.
// Removing an absent id is a no-op.
func (s *Store) RemoveFromAllContainers(id int) (Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(id)
}

// InsertInto inserts q into container c at position and renumbers the list. A
// negative or past-the-end position appends. The question must not already be
// held by the store.
func (s *Store) InsertInto(c Container, q Question, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.list(c)
	if !ok {
		return fmt.Errorf("insert question %d: %w: %s", q.ID, ErrUnknownContainer, c)
	}
	if _, _, _, exists := s.find(q.ID); exists {
		return fmt.Errorf("insert question %d: already present", q.ID)
	}

	s.setList(c, Renumber(insertAt(list, q, position), c))
	return nil
}

// ReorderWithin moves one element of container c from one index to another.
func (s *Store) ReorderWithin(c Container, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.list(c)
	if !ok {
		return fmt.Errorf("reorder: %w: %s", ErrUnknownContainer, c)
	}
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return fmt.Errorf("reorder %s from %d to %d: %w", c, from, to, ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}

	s.setList(c, Renumber(arrayMove(list, from, to), c))
	return nil
}

// Move takes the question out of its current container and appends it to
// target, updating publication state and renumbering both lists.
func (s *Store) Move(id int, target Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.move(id, target)
}

// MoveCategory changes the display position of a category.
func (s *Store) MoveCategory(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from < 0 || from >= len(s.categories) || to < 0 || to >= len(s.categories) {
		return fmt.Errorf("move category from %d to %d: %w", from, to, ErrIndexOutOfRange)
	}

	moved := arrayMove(s.categories, from, to)
	for i := range moved {
		moved[i].DisplayOrder = i + 1
	}
	s.categories = moved
	return nil
}

// CategoryIndex returns the display position of a category.
func (s *Store) CategoryIndex(id int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) move(id int, target Container) error {
	if _, ok := s.list(target); !ok {
		return fmt.Errorf("move question %d: %w: %s", id, ErrUnknownContainer, target)
	}

	q, ok := s.remove(id)
	if !ok {
		return fmt.Errorf("move question %d: %w", id, ErrUnknownQuestion)
	}

	list, _ := s.list(target)
	s.setList(target, Renumber(append(cloneQuestions(list), q), target))
	return nil
}

func (s *Store) find(id int) (Question, Container, int, bool) {
	for _, cat := range s.categories {
		if i := indexOf(cat.Questions, id); i >= 0 {
			return cat.Questions[i], CategoryContainer(cat.ID), i, true
		}
	}
	if i := indexOf(s.uncategorized, id); i >= 0 {
		return s.uncategorized[i], Uncategorized, i, true
	}
	if i := indexOf(s.drafts, id); i >= 0 {
		return s.drafts[i], Drafts, i, true
	}
	return Question{}, Container{}, -1, false
}

func (s *Store) remove(id int) (Question, bool) {
	q, c, i, ok := s.find(id)
	if !ok {
		return Question{}, false
	}

	list, _ := s.list(c)
	rest := make([]Question, 0, len(list)-1)
	rest = append(rest, list[:i]...)
	rest = append(rest, list[i+1:]...)
	s.setList(c, Renumber(rest, c))

	return q.clone(), true
}

func (s *Store) list(c Container) ([]Question, bool) {
	switch c.kind {
	case KindCategory:
		for i := range s.categories {
			if s.categories[i].ID == c.categoryID {
				return s.categories[i].Questions, true
			}
		}
	case KindUncategorized:
		return s.uncategorized, true
	case KindDrafts:
		return s.drafts, true
	}
	return nil, false
}

// setList swaps in a new list; categories are copied so a previously handed
// out slice header is never written through.
func (s *Store) setList(c Container, list []Question) {
	switch c.kind {
	case KindCategory:
		cats := make([]Category, len(s.categories))
		copy(cats, s.categories)
		for i := range cats {
			if cats[i].ID == c.categoryID {
				cats[i].Questions = list
			}
		}
		s.categories = cats
	case KindUncategorized:
		s.uncategorized = list
	case KindDrafts:
		s.drafts = list
	}
}

func insertAt(list []Question, q Question, position int) []Question {
	if position < 0 || position > len(list) {
		position = len(list)
	}

	out := make([]Question, 0, len(list)+1)
	out = append(out, list[:position]...)
	out = append(out, q)
	out = append(out, list[position:]...)
	return out
}
