package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/partyplan/faq/internal/eventfaq"
	"github.com/partyplan/faq/internal/faq"
)

//go:generate zenrpc

// Manager is the part of *eventfaq.Manager exposed over JSON-RPC.
type Manager interface {
	Board(ctx context.Context, v eventfaq.Viewer, eventID int) (*faq.Store, error)
	Questions(ctx context.Context, v eventfaq.Viewer, eventID int) ([]eventfaq.Question, error)
	Categories(ctx context.Context, v eventfaq.Viewer, eventID int) ([]eventfaq.Category, error)
	UpdateOrder(ctx context.Context, v eventfaq.Viewer, eventID int, order faq.QuestionOrder) error
	UpdateCategoryOrder(ctx context.Context, v eventfaq.Viewer, eventID int, order faq.CategoryOrder) error
}

// FAQService provides RPC methods for reading and ordering an event FAQ.
// The caller is the user of the access token, if any.
type FAQService struct {
	zenrpc.Service
	manager Manager
	logger  *slog.Logger
}

func NewFAQService(manager Manager, logger *slog.Logger) *FAQService {
	return &FAQService{manager: manager, logger: logger}
}

// Board returns the FAQ grouped into categories, uncategorized and drafts.
//
//zenrpc:eventId event numeric ID
//zenrpc:inviteToken invite token for guests without an account
//zenrpc:return questions grouped by container
//zenrpc:400 eventId must be positive
//zenrpc:401 authentication required
//zenrpc:404 event not found
//zenrpc:500 internal server error
func (s FAQService) Board(ctx context.Context, eventID int, inviteToken *string) (*Board, error) {
	if eventID <= 0 {
		return nil, zenrpc.NewStringError(400, "eventId must be positive")
	}

	store, err := s.manager.Board(ctx, viewer(ctx, inviteToken), eventID)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	board := NewBoard(store.Snapshot())
	return &board, nil
}

// Questions returns the questions visible to the caller: published first, then
// by published order and draft order.
//
//zenrpc:eventId event numeric ID
//zenrpc:inviteToken invite token for guests without an account
//zenrpc:return list of questions
//zenrpc:400 eventId must be positive
//zenrpc:401 authentication required
//zenrpc:404 event not found
//zenrpc:500 internal server error
func (s FAQService) Questions(ctx context.Context, eventID int, inviteToken *string) ([]Question, error) {
	if eventID <= 0 {
		return nil, zenrpc.NewStringError(400, "eventId must be positive")
	}

	questions, err := s.manager.Questions(ctx, viewer(ctx, inviteToken), eventID)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return newList(questions, NewQuestion), nil
}

// Categories returns the categories of an event ordered by displayOrder.
//
//zenrpc:eventId event numeric ID
//zenrpc:inviteToken invite token for guests without an account
//zenrpc:return list of categories
//zenrpc:400 eventId must be positive
//zenrpc:401 authentication required
//zenrpc:404 event not found
//zenrpc:500 internal server error
func (s FAQService) Categories(ctx context.Context, eventID int, inviteToken *string) ([]Category, error) {
	if eventID <= 0 {
		return nil, zenrpc.NewStringError(400, "eventId must be positive")
	}

	categories, err := s.manager.Categories(ctx, viewer(ctx, inviteToken), eventID)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return newList(categories, NewCategory), nil
}

// UpdateOrder saves container and position of the listed questions. Hosts only.
//
//zenrpc:eventId event numeric ID
//zenrpc:items new placement of questions
//zenrpc:return true on success
//zenrpc:400 invalid order
//zenrpc:401 authentication required
//zenrpc:403 host only
//zenrpc:404 event or question not found
//zenrpc:500 internal server error
func (s FAQService) UpdateOrder(ctx context.Context, eventID int, items []QuestionOrderItem) (bool, error) {
	order := faq.QuestionOrder{Items: newList(items, QuestionOrderItem.ToModel)}
	if err := s.manager.UpdateOrder(ctx, viewer(ctx, nil), eventID, order); err != nil {
		return false, s.newError(ctx, err)
	}

	return true, nil
}

// UpdateCategoryOrder saves the display order of categories. Hosts only.
//
//zenrpc:eventId event numeric ID
//zenrpc:items new display order of categories
//zenrpc:return true on success
//zenrpc:400 invalid order
//zenrpc:401 authentication required
//zenrpc:403 host only
//zenrpc:404 event or category not found
//zenrpc:500 internal server error
func (s FAQService) UpdateCategoryOrder(ctx context.Context, eventID int, items []CategoryOrderItem) (bool, error) {
	order := faq.CategoryOrder{Items: newList(items, CategoryOrderItem.ToModel)}
	if err := s.manager.UpdateCategoryOrder(ctx, viewer(ctx, nil), eventID, order); err != nil {
		return false, s.newError(ctx, err)
	}

	return true, nil
}

func viewer(ctx context.Context, inviteToken *string) eventfaq.Viewer {
	token := ""
	if inviteToken != nil {
		token = *inviteToken
	}
	return eventfaq.ViewerFromContext(ctx, token)
}

// newError converts manager errors to JSON-RPC errors with HTTP-like codes.
func (s FAQService) newError(ctx context.Context, err error) error {
	code := 500
	switch {
	case errors.Is(err, eventfaq.ErrInvalidInput):
		code = 400
	case errors.Is(err, eventfaq.ErrUnauthenticated):
		code = 401
	case errors.Is(err, eventfaq.ErrForbidden):
		code = 403
	case errors.Is(err, eventfaq.ErrEventNotFound),
		errors.Is(err, eventfaq.ErrQuestionNotFound),
		errors.Is(err, eventfaq.ErrCategoryNotFound):
		code = 404
	}

	if code == 500 {
		s.logger.ErrorContext(ctx, "faq rpc failed", "error", err)
		return zenrpc.NewStringError(code, "internal server error")
	}

	var ferr *eventfaq.Error
	if errors.As(err, &ferr) {
		return zenrpc.NewStringError(code, ferr.Error())
	}
	return zenrpc.NewStringError(code, err.Error())
}
