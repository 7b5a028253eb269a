package faqclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/partyplan/faq/internal/faq"
)

// API is the part of *Client the editor needs.
type API interface {
	Questions(ctx context.Context, eventID int) ([]faq.Question, error)
	Categories(ctx context.Context, eventID int) ([]faq.Category, error)
	SubmitQuestion(ctx context.Context, eventID int, text string) (faq.Question, error)
	SaveQuestionOrder(ctx context.Context, eventID int, order faq.QuestionOrder) error
	SaveCategoryOrder(ctx context.Context, eventID int, order faq.CategoryOrder) error
}

const (
	loadRetries      = 3
	loadRetryBackoff = 200 * time.Millisecond
)

// Editor is the host's working copy of an event FAQ. Edits change the local
// store only and mark it dirty until Save succeeds.
type Editor struct {
	api     API
	eventID int
	logger  *slog.Logger
	backoff time.Duration

	mu    sync.Mutex
	store *faq.Store
	ctl   *faq.Controller
	dirty bool
}

func NewEditor(api API, eventID int, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}

	store := faq.NewStore(nil, nil)
	return &Editor{
		api:     api,
		eventID: eventID,
		logger:  logger,
		backoff: loadRetryBackoff,
		store:   store,
		ctl:     faq.NewController(store),
	}
}

// Load replaces the local copy with the server state. Temporary failures are
// retried a few times.
func (e *Editor) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.load(ctx)
}

func (e *Editor) load(ctx context.Context) error {
	var (
		categories []faq.Category
		questions  []faq.Question
	)

	b := retry.WithMaxRetries(loadRetries, retry.NewExponential(e.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		var err error
		if categories, err = e.api.Categories(ctx, e.eventID); err != nil {
			return retryable(err)
		}
		if questions, err = e.api.Questions(ctx, e.eventID); err != nil {
			return retryable(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load faq of event %d: %w", e.eventID, err)
	}

	e.store = faq.NewStore(categories, questions)
	e.ctl = faq.NewController(e.store)
	e.dirty = false
	return nil
}

// retryable marks transport failures and temporary API errors for retry.
func retryable(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() {
		return err
	}
	return retry.RetryableError(err)
}

func (e *Editor) Snapshot() faq.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.Snapshot()
}

func (e *Editor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dirty
}

// Classify resolves a container token such as "drafts" or a category id.
func (e *Editor) Classify(containerID string) (faq.Container, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.Classify(containerID)
}

// Find returns a question and the container holding it.
func (e *Editor) Find(questionID int) (faq.Question, faq.Container, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.FindQuestion(questionID)
}

func (e *Editor) DragStart(item faq.DragItem) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctl.DragStart(item)
}

func (e *Editor) DragCancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctl.DragCancel()
}

func (e *Editor) DragEnd(ev faq.DragEndEvent) faq.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.ctl.DragEnd(ev)
	if out != faq.NoOp {
		e.dirty = true
	}
	return out
}

// Move appends a question to the target container.
func (e *Editor) Move(questionID int, target faq.Container) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Move(questionID, target); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// MoveCategory moves the category at display index from to index to.
func (e *Editor) MoveCategory(from, to int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if from == to {
		return nil
	}
	if err := e.store.MoveCategory(from, to); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) CategoryIndex(categoryID int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.CategoryIndex(categoryID)
}

// Ask submits a new question and adds the server copy to the local store. It
// does not touch the dirty flag.
func (e *Editor) Ask(ctx context.Context, text string) (faq.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	q, err := e.api.SubmitQuestion(ctx, e.eventID, text)
	if err != nil {
		return faq.Question{}, fmt.Errorf("submit question: %w", err)
	}

	if err := e.store.InsertInto(faq.ContainerOf(q), q, -1); err != nil {
		e.logger.WarnContext(ctx, "submitted question not shown locally", "questionId", q.ID, "error", err)
	}
	return q, nil
}

// Save sends the question order, then the category order. Each request is
// applied atomically by the server, but the pair is not: when only the
// category order fails, the question order stays saved and the reloaded copy
// shows it with the old category order. When saving fails the local copy is
// replaced by a fresh server copy; if that fails too the local edits are kept
// and stay dirty. The save error is returned either way.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.api.SaveQuestionOrder(ctx, e.eventID, e.store.QuestionOrder())
	if err != nil {
		err = fmt.Errorf("save question order: %w", err)
	} else if err = e.api.SaveCategoryOrder(ctx, e.eventID, e.store.CategoryOrder()); err != nil {
		err = fmt.Errorf("save category order: %w", err)
	}

	if err == nil {
		e.dirty = false
		return nil
	}

	e.logger.WarnContext(ctx, "faq save failed, reloading", "eventId", e.eventID, "error", err)
	if lerr := e.load(ctx); lerr != nil {
		e.logger.ErrorContext(ctx, "faq reload failed, keeping local edits", "eventId", e.eventID, "error", lerr)
		e.dirty = true
	}
	return err
}
