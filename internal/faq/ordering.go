package faq

// Renumber returns a copy of list where each question carries the order number
// of its position (1-based) and the publication fields of container c.
func Renumber(list []Question, c Container) []Question {
	out := make([]Question, len(list))
	for i := range list {
		out[i] = place(list[i].clone(), c, i+1)
	}
	return out
}

func place(q Question, c Container, order int) Question {
	switch c.kind {
	case KindCategory:
		q.IsPublished = true
		q.CategoryID = intPtr(c.categoryID)
		q.PublishedOrder = intPtr(order)
		q.DraftOrder = nil
	case KindUncategorized:
		q.IsPublished = true
		q.CategoryID = nil
		q.PublishedOrder = intPtr(order)
		q.DraftOrder = nil
	case KindDrafts:
		q.IsPublished = false
		q.CategoryID = nil
		q.PublishedOrder = nil
		q.DraftOrder = intPtr(order)
	}
	return q
}

// arrayMove removes the element at from and inserts it at to, shifting the
// elements in between by one. The input slice is not modified.
func arrayMove[T any](list []T, from, to int) []T {
	out := make([]T, 0, len(list))
	item := list[from]
	for i := range list {
		if i != from {
			out = append(out, list[i])
		}
	}

	out = append(out, item)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = item
	return out
}

func indexOf(list []Question, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
