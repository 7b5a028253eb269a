package faq

import "sync"

type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome describes what a finished drag did to the store.
type Outcome int

const (
	NoOp Outcome = iota
	Reordered
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Reordered:
		return "reordered"
	case Moved:
		return "moved"
	}
	return "noop"
}

// DragItem is the dragged question together with the container metadata the
// UI attached to it.
type DragItem struct {
	ID          int
	ContainerID string
}

// DropTarget is what the item was released over: another question (ID set) or
// an empty area of a container (ID zero).
type DropTarget struct {
	ID          int
	ContainerID string
}

type DragEndEvent struct {
	Active DragItem
	Over   *DropTarget
}

// Controller turns drag gestures into store mutations. Only one gesture is
// active at a time.
type Controller struct {
	mu     sync.Mutex
	store  *Store
	state  DragState
	active DragItem
}

func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

func (c *Controller) State() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the item being dragged, if any.
func (c *Controller) Active() (DragItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.state == Dragging
}

func (c *Controller) DragStart(item DragItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Dragging
	c.active = item
}

// DragCancel abandons the gesture without touching the store.
func (c *Controller) DragCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Idle
	c.active = DragItem{}
}

// DragEnd finishes the gesture and applies at most one mutation. Events that
// cannot be resolved to a source and a target container leave the store
// untouched. The controller is Idle afterwards whatever the outcome.
func (c *Controller) DragEnd(ev DragEndEvent) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		c.state = Idle
		c.active = DragItem{}
	}()

	if ev.Over == nil {
		return NoOp
	}

	source, ok := c.store.Classify(ev.Active.ContainerID)
	if !ok {
		return NoOp
	}
	target, ok := c.store.Classify(ev.Over.ContainerID)
	if !ok {
		return NoOp
	}

	if source == target {
		return c.reorder(source, ev.Active.ID, ev.Over.ID)
	}

	if err := c.store.Move(ev.Active.ID, target); err != nil {
		return NoOp
	}
	return Moved
}

func (c *Controller) reorder(container Container, activeID, overID int) Outcome {
	list, ok := c.store.Questions(container)
	if !ok {
		return NoOp
	}

	from := indexOf(list, activeID)
	if from < 0 {
		return NoOp
	}
	to := indexOf(list, overID)
	if to < 0 {
		to = len(list) - 1
	}
	if from == to {
		return NoOp
	}

	if err := c.store.ReorderWithin(container, from, to); err != nil {
		return NoOp
	}
	return Reordered
}
