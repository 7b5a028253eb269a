// Package faqclient talks to the FAQ REST API and keeps a local editable copy
// of an event FAQ.
package faqclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/partyplan/faq/internal/faq"
)

// ErrRequestFailed is wrapped by every error returned for a failed request.
var ErrRequestFailed = errors.New("faq request failed")

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response of the FAQ API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("faq api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("faq api: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return ErrRequestFailed }

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	token       string
	inviteToken string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer access token of a registered user.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithInviteToken identifies a guest without an account.
func WithInviteToken(token string) Option {
	return func(c *Client) { c.inviteToken = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type questionDTO struct {
	ID             int     `json:"id"`
	EventID        int     `json:"event_id"`
	QuestionText   string  `json:"question_text"`
	AnswerText     *string `json:"answer_text"`
	CategoryID     *int    `json:"category_id"`
	IsPublished    bool    `json:"is_published"`
	PublishedOrder *int    `json:"published_order"`
	DraftOrder     *int    `json:"draft_order"`
	UserID         *int    `json:"user_id"`
	AskerUserIDs   []int   `json:"asker_user_ids"`
}

func (q questionDTO) toModel() faq.Question {
	return faq.Question{
		ID:             q.ID,
		EventID:        q.EventID,
		Text:           q.QuestionText,
		Answer:         q.AnswerText,
		CategoryID:     q.CategoryID,
		IsPublished:    q.IsPublished,
		PublishedOrder: q.PublishedOrder,
		DraftOrder:     q.DraftOrder,
		UserID:         q.UserID,
		AskerUserIDs:   q.AskerUserIDs,
	}
}

type categoryDTO struct {
	ID           int    `json:"id"`
	EventID      int    `json:"event_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type submitRequest struct {
	QuestionText string  `json:"question_text"`
	InviteToken  *string `json:"invite_token,omitempty"`
}

// Questions returns the questions of an event visible to the caller.
func (c *Client) Questions(ctx context.Context, eventID int) ([]faq.Question, error) {
	var list []questionDTO
	if err := c.do(ctx, http.MethodGet, c.readPath(eventID, "questions"), nil, &list); err != nil {
		return nil, err
	}

	questions := make([]faq.Question, len(list))
	for i := range list {
		questions[i] = list[i].toModel()
	}
	return questions, nil
}

// Categories returns the categories of an event in display order.
func (c *Client) Categories(ctx context.Context, eventID int) ([]faq.Category, error) {
	var list []categoryDTO
	if err := c.do(ctx, http.MethodGet, c.readPath(eventID, "question-categories"), nil, &list); err != nil {
		return nil, err
	}

	categories := make([]faq.Category, len(list))
	for i, dto := range list {
		categories[i] = faq.Category{
			ID:           dto.ID,
			EventID:      dto.EventID,
			Name:         dto.Name,
			DisplayOrder: dto.DisplayOrder,
		}
	}
	return categories, nil
}

// SubmitQuestion asks a new question. It lands at the end of the drafts.
func (c *Client) SubmitQuestion(ctx context.Context, eventID int, text string) (faq.Question, error) {
	req := submitRequest{QuestionText: text}
	if c.inviteToken != "" {
		req.InviteToken = &c.inviteToken
	}

	var q questionDTO
	if err := c.do(ctx, http.MethodPost, eventPath(eventID, "questions"), req, &q); err != nil {
		return faq.Question{}, err
	}
	return q.toModel(), nil
}

func (c *Client) SaveQuestionOrder(ctx context.Context, eventID int, order faq.QuestionOrder) error {
	return c.do(ctx, http.MethodPut, eventPath(eventID, "questions/order"), order, nil)
}

func (c *Client) SaveCategoryOrder(ctx context.Context, eventID int, order faq.CategoryOrder) error {
	return c.do(ctx, http.MethodPut, eventPath(eventID, "question-categories/order"), order, nil)
}

func eventPath(eventID int, resource string) string {
	return fmt.Sprintf("/api/events/%d/%s", eventID, resource)
}

func (c *Client) readPath(eventID int, resource string) string {
	p := eventPath(eventID, resource)
	if c.inviteToken != "" {
		p += "?" + url.Values{"invite_token": []string{c.inviteToken}}.Encode()
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode body: %w", ErrRequestFailed, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", ErrRequestFailed, method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
