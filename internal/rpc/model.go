package rpc

import "time"

type Question struct {
	ID             int     `json:"id"`
	CategoryID     *int    `json:"categoryId,omitempty"`
	QuestionText   string  `json:"questionText"`
	AnswerText     *string `json:"answerText,omitempty"`
	IsPublished    bool    `json:"isPublished"`
	PublishedOrder *int    `json:"publishedOrder,omitempty"`
	DraftOrder     *int    `json:"draftOrder,omitempty"`
	UserID         *int    `json:"userId,omitempty"`
	AskerUserIDs   []int   `json:"askerUserIds"`
}

type Category struct {
	CategoryID   int       `json:"categoryId"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BoardCategory struct {
	CategoryID   int        `json:"categoryId"`
	Name         string     `json:"name"`
	DisplayOrder int        `json:"displayOrder"`
	Questions    []Question `json:"questions"`
}

// Board is the FAQ grouped by container, each list in display order.
type Board struct {
	Categories    []BoardCategory `json:"categories"`
	Uncategorized []Question      `json:"uncategorized"`
	Drafts        []Question      `json:"drafts"`
}

type QuestionOrderItem struct {
	QuestionID     int  `json:"questionId"`
	IsPublished    bool `json:"isPublished"`
	CategoryID     *int `json:"categoryId,omitempty"`
	PublishedOrder *int `json:"publishedOrder,omitempty"`
	DraftOrder     *int `json:"draftOrder,omitempty"`
}

type CategoryOrderItem struct {
	CategoryID   int `json:"categoryId"`
	DisplayOrder int `json:"displayOrder"`
}
