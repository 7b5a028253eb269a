package rest

import "time"

type Question struct {
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

type Category struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReadRequest is the query string of GET endpoints.
type ReadRequest struct {
	InviteToken string
}

type QuestionCreateRequest struct {
	QuestionText string  `json:"question_text"`
	AnswerText   *string `json:"answer_text"`
	CategoryID   *int    `json:"category_id"`
	IsPublished  bool    `json:"is_published"`
	InviteToken  *string `json:"invite_token"`
}

type QuestionUpdateRequest struct {
	AskerUserIDs []int   `json:"asker_user_ids"`
	AnswerText   *string `json:"answer_text"`
	QuestionText *string `json:"question_text"`
}

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

type CategoryUpdateRequest struct {
	Name *string `json:"name"`
}
