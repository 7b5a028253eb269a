package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/partyplan/faq/internal/eventfaq"
	"github.com/partyplan/faq/internal/faq"
)

// FAQManager is implemented by *eventfaq.Manager.
type FAQManager interface {
	Questions(ctx context.Context, v eventfaq.Viewer, eventID int) ([]eventfaq.Question, error)
	CreateQuestion(ctx context.Context, v eventfaq.Viewer, eventID int, in eventfaq.QuestionCreate) (*eventfaq.Question, error)
	UpdateOrder(ctx context.Context, v eventfaq.Viewer, eventID int, order faq.QuestionOrder) error
	UpdateQuestion(ctx context.Context, v eventfaq.Viewer, eventID, questionID int, in eventfaq.QuestionUpdate) (*eventfaq.Question, error)
	DeleteQuestion(ctx context.Context, v eventfaq.Viewer, eventID, questionID int) error

	Categories(ctx context.Context, v eventfaq.Viewer, eventID int) ([]eventfaq.Category, error)
	CreateCategory(ctx context.Context, v eventfaq.Viewer, eventID int, name string) (*eventfaq.Category, error)
	UpdateCategory(ctx context.Context, v eventfaq.Viewer, eventID, categoryID int, name *string) (*eventfaq.Category, error)
	UpdateCategoryOrder(ctx context.Context, v eventfaq.Viewer, eventID int, order faq.CategoryOrder) error
	DeleteCategory(ctx context.Context, v eventfaq.Viewer, eventID, categoryID int) error
}

type Options struct {
	JWTSecret string
	// QuestionsPerMinute limits question submissions per client IP; zero
	// disables the limit.
	QuestionsPerMinute float64
	QuestionBurst      int
	Sentry             bool
}

type FAQHandler struct {
	uc      FAQManager
	log     *slog.Logger
	auth    *Authenticator
	metrics *metrics
	opts    Options
}

func NewFAQHandler(uc FAQManager, log *slog.Logger, opts Options) *FAQHandler {
	return &FAQHandler{
		uc:      uc,
		log:     log,
		auth:    NewAuthenticator(opts.JWTSecret),
		metrics: newMetrics(),
		opts:    opts,
	}
}

func (h *FAQHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
		if hub := sentryecho.GetHubFromContext(c); hub != nil && err != nil {
			hub.CaptureException(err)
		}
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps manager errors to HTTP statuses. Anything unknown is
// an internal error and its text is not exposed.
func (h *FAQHandler) handleManagerError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, eventfaq.ErrEventNotFound),
		errors.Is(err, eventfaq.ErrQuestionNotFound),
		errors.Is(err, eventfaq.ErrCategoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, eventfaq.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, eventfaq.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, eventfaq.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	message := "internal error"
	if status != http.StatusInternalServerError {
		message = err.Error()
		var ferr *eventfaq.Error
		if errors.As(err, &ferr) {
			message = ferr.Error()
		}
	}

	return h.handleError(c, err, status, message)
}

func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
