package rest

import (
	"net/http"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	// API paths
	eventPrefix = "/api/events/:eventId"

	questionsPath     = eventPrefix + "/questions"
	questionOrderPath = questionsPath + "/order"
	questionPath      = questionsPath + "/:questionId"

	categoriesPath    = eventPrefix + "/question-categories"
	categoryOrderPath = categoriesPath + "/order"
	categoryPath      = categoriesPath + "/:categoryId"

	// Service paths
	healthPath  = "/health"
	metricsPath = "/metrics"

	limiterExpiresIn = 3 * time.Minute
)

// RegisterRoutes builds the echo instance with middleware and all FAQ routes.
func (h *FAQHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if h.opts.Sentry {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(h.requestLogger())
	e.Use(h.metrics.middleware())
	e.Use(h.auth.Middleware())

	h.registerAPIRoutes(e)
	h.registerServiceRoutes(e)

	return e
}

func (h *FAQHandler) registerAPIRoutes(e *echo.Echo) {
	e.GET(questionsPath, h.Questions)
	e.POST(questionsPath, h.CreateQuestion, h.questionLimiter()...)
	// static segment wins over :questionId in echo's router
	e.PUT(questionOrderPath, h.UpdateQuestionOrder)
	e.PUT(questionPath, h.UpdateQuestion)
	e.DELETE(questionPath, h.DeleteQuestion)

	e.GET(categoriesPath, h.Categories)
	e.POST(categoriesPath, h.CreateCategory)
	e.PUT(categoryOrderPath, h.UpdateCategoryOrder)
	e.PUT(categoryPath, h.UpdateCategory)
	e.DELETE(categoryPath, h.DeleteCategory)
}

func (h *FAQHandler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
	e.GET(metricsPath, echo.WrapHandler(h.metrics.handler()))
}

func (h *FAQHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// questionLimiter throttles question submissions per client IP.
func (h *FAQHandler) questionLimiter() []echo.MiddlewareFunc {
	if h.opts.QuestionsPerMinute <= 0 {
		return nil
	}

	burst := h.opts.QuestionBurst
	if burst <= 0 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(h.opts.QuestionsPerMinute / 60),
		Burst:     burst,
		ExpiresIn: limiterExpiresIn,
	})

	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return h.handleError(c, err, http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return h.handleError(c, err, http.StatusTooManyRequests, "Too many questions, try again later")
		},
	})}
}

func (h *FAQHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}

			h.log.Info("HTTP request", attrs...)
			return nil
		},
	})
}
