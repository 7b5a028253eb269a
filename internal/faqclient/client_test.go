package faqclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyplan/faq/internal/faq"
)

func TestClient_Read(t *testing.T) {
	var gotAuth, gotInvite string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events/{eventId}/questions", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotInvite = r.URL.Query().Get("invite_token")
		_, _ = io.WriteString(w, `[
			{"id":1,"event_id":7,"question_text":"Parking?","answer_text":"Yes","category_id":2,
			 "is_published":true,"published_order":1,"draft_order":null,"user_id":null,"asker_user_ids":[]},
			{"id":4,"event_id":7,"question_text":"Kids?","answer_text":null,"category_id":null,
			 "is_published":false,"published_order":null,"draft_order":1,"user_id":20,"asker_user_ids":[20]}
		]`)
	})
	mux.HandleFunc("GET /api/events/{eventId}/question-categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.PathValue("eventId"))
		_, _ = io.WriteString(w, `[{"id":2,"event_id":7,"name":"Venue","display_order":1}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL+"/", WithToken("jwt"), WithInviteToken("tok 1"))

	questions, err := c.Questions(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt", gotAuth)
	assert.Equal(t, "tok 1", gotInvite)

	require.Len(t, questions, 2)
	assert.Equal(t, faq.CategoryContainer(2), faq.ContainerOf(questions[0]))
	assert.Equal(t, "Yes", *questions[0].Answer)
	assert.Equal(t, faq.Drafts, faq.ContainerOf(questions[1]))
	assert.Equal(t, []int{20}, questions[1].AskerUserIDs)

	categories, err := c.Categories(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []faq.Category{{ID: 2, EventID: 7, Name: "Venue", DisplayOrder: 1}}, categories)
}

func TestClient_Write(t *testing.T) {
	var questionOrder, categoryOrder map[string]any
	var submitted map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/events/1/questions/order", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&questionOrder))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /api/events/1/question-categories/order", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&categoryOrder))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/events/1/questions", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		_, _ = io.WriteString(w, `{"id":9,"event_id":1,"question_text":"Dogs?","is_published":false,"draft_order":3}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL, WithInviteToken("tok-1"))

	one := 1
	require.NoError(t, c.SaveQuestionOrder(ctx, 1, faq.QuestionOrder{Items: []faq.QuestionOrderItem{{QuestionID: 4, DraftOrder: &one}}}))
	assert.Equal(t, map[string]any{"items": []any{map[string]any{
		"question_id": float64(4), "is_published": false, "category_id": nil, "published_order": nil, "draft_order": float64(1),
	}}}, questionOrder)

	require.NoError(t, c.SaveCategoryOrder(ctx, 1, faq.CategoryOrder{Items: []faq.CategoryOrderItem{{CategoryID: 2, DisplayOrder: 1}}}))
	assert.Equal(t, map[string]any{"items": []any{map[string]any{"category_id": float64(2), "display_order": float64(1)}}}, categoryOrder)

	q, err := c.SubmitQuestion(ctx, 1, "Dogs?")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"question_text": "Dogs?", "invite_token": "tok-1"}, submitted)
	assert.Equal(t, 9, q.ID)
	assert.Equal(t, 3, q.Order())
}

func TestClient_Errors(t *testing.T) {
	t.Run("APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":"Only hosts can reorder questions"}`)
		}))
		defer srv.Close()

		err := New(srv.URL).SaveQuestionOrder(context.Background(), 1, faq.QuestionOrder{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequestFailed)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Equal(t, "Only hosts can reorder questions", apiErr.Message)
		assert.False(t, apiErr.Temporary())
	})

	t.Run("NonJSONBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := New(srv.URL).Questions(context.Background(), 1)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Message)
		assert.True(t, apiErr.Temporary())
	})

	t.Run("Transport", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := New(srv.URL).Categories(context.Background(), 1)
		assert.ErrorIs(t, err, ErrRequestFailed)
	})
}
