// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Event struct {
		ID, Title, CreatedAt string
	}
	Invite struct {
		ID, EventID, Token, UserID, CreatedAt string

		Event string
	}
	Participant struct {
		EventID, UserID, Role, CreatedAt string

		Event string
	}
	Question struct {
		ID, EventID, QuestionText, AnswerText, CategoryID, IsPublished, PublishedOrder, DraftOrder, UserID, CreatedAt, PublishedAt, UpdatedAt string

		Category, Askers string
	}
	QuestionAsker struct {
		QuestionID, UserID, CreatedAt string
	}
	QuestionCategory struct {
		ID, EventID, Name, DisplayOrder, CreatedAt, UpdatedAt string

		Event string
	}
}{
	Event: struct {
		ID, Title, CreatedAt string
	}{
		ID:        "id",
		Title:     "title",
		CreatedAt: "created_at",
	},
	Invite: struct {
		ID, EventID, Token, UserID, CreatedAt string

		Event string
	}{
		ID:        "id",
		EventID:   "event_id",
		Token:     "token",
		UserID:    "user_id",
		CreatedAt: "created_at",

		Event: "Event",
	},
	Participant: struct {
		EventID, UserID, Role, CreatedAt string

		Event string
	}{
		EventID:   "event_id",
		UserID:    "user_id",
		Role:      "role",
		CreatedAt: "created_at",

		Event: "Event",
	},
	Question: struct {
		ID, EventID, QuestionText, AnswerText, CategoryID, IsPublished, PublishedOrder, DraftOrder, UserID, CreatedAt, PublishedAt, UpdatedAt string

		Category, Askers string
	}{
		ID:             "id",
		EventID:        "event_id",
		QuestionText:   "question_text",
		AnswerText:     "answer_text",
		CategoryID:     "category_id",
		IsPublished:    "is_published",
		PublishedOrder: "published_order",
		DraftOrder:     "draft_order",
		UserID:         "user_id",
		CreatedAt:      "created_at",
		PublishedAt:    "published_at",
		UpdatedAt:      "updated_at",

		Category: "Category",
		Askers:   "Askers",
	},
	QuestionAsker: struct {
		QuestionID, UserID, CreatedAt string
	}{
		QuestionID: "question_id",
		UserID:     "user_id",
		CreatedAt:  "created_at",
	},
	QuestionCategory: struct {
		ID, EventID, Name, DisplayOrder, CreatedAt, UpdatedAt string

		Event string
	}{
		ID:           "id",
		EventID:      "event_id",
		Name:         "name",
		DisplayOrder: "display_order",
		CreatedAt:    "created_at",
		UpdatedAt:    "updated_at",

		Event: "Event",
	},
}

var Tables = struct {
	Event struct {
		Name, Alias string
	}
	Invite struct {
		Name, Alias string
	}
	Participant struct {
		Name, Alias string
	}
	Question struct {
		Name, Alias string
	}
	QuestionAsker struct {
		Name, Alias string
	}
	QuestionCategory struct {
		Name, Alias string
	}
}{
	Event: struct {
		Name, Alias string
	}{
		Name:  "events",
		Alias: "t",
	},
	Invite: struct {
		Name, Alias string
	}{
		Name:  "invites",
		Alias: "t",
	},
	Participant: struct {
		Name, Alias string
	}{
		Name:  "participants",
		Alias: "t",
	},
	Question: struct {
		Name, Alias string
	}{
		Name:  "questions",
		Alias: "t",
	},
	QuestionAsker: struct {
		Name, Alias string
	}{
		Name:  "question_askers",
		Alias: "t",
	},
	QuestionCategory: struct {
		Name, Alias string
	}{
		Name:  "question_categories",
		Alias: "t",
	},
}

type Event struct {
	tableName struct{} `pg:"events,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Title     string    `pg:"title,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

type Invite struct {
	tableName struct{} `pg:"invites,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	EventID   int       `pg:"event_id,use_zero"`
	Token     string    `pg:"token,use_zero"`
	UserID    *int      `pg:"user_id"`
	CreatedAt time.Time `pg:"created_at,use_zero"`

	Event *Event `pg:"fk:event_id,rel:has-one"`
}

type Participant struct {
	tableName struct{} `pg:"participants,alias:t,discard_unknown_columns"`

	EventID   int       `pg:"event_id,pk"`
	UserID    int       `pg:"user_id,pk"`
	Role      string    `pg:"role,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`

	Event *Event `pg:"fk:event_id,rel:has-one"`
}

type Question struct {
	tableName struct{} `pg:"questions,alias:t,discard_unknown_columns"`

	ID             int        `pg:"id,pk"`
	EventID        int        `pg:"event_id,use_zero"`
	QuestionText   string     `pg:"question_text,use_zero"`
	AnswerText     *string    `pg:"answer_text"`
	CategoryID     *int       `pg:"category_id"`
	IsPublished    bool       `pg:"is_published,use_zero"`
	PublishedOrder *int       `pg:"published_order"`
	DraftOrder     *int       `pg:"draft_order"`
	UserID         *int       `pg:"user_id"`
	CreatedAt      time.Time  `pg:"created_at,use_zero"`
	PublishedAt    *time.Time `pg:"published_at"`
	UpdatedAt      time.Time  `pg:"updated_at,use_zero"`

	Category *QuestionCategory `pg:"fk:category_id,rel:has-one"`
	Askers   []QuestionAsker   `pg:"rel:has-many"`
}

type QuestionAsker struct {
	tableName struct{} `pg:"question_askers,alias:t,discard_unknown_columns"`

	QuestionID int       `pg:"question_id,pk"`
	UserID     int       `pg:"user_id,pk"`
	CreatedAt  time.Time `pg:"created_at,use_zero"`
}

type QuestionCategory struct {
	tableName struct{} `pg:"question_categories,alias:t,discard_unknown_columns"`

	ID           int       `pg:"id,pk"`
	EventID      int       `pg:"event_id,use_zero"`
	Name         string    `pg:"name,use_zero"`
	DisplayOrder int       `pg:"display_order,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
	UpdatedAt    time.Time `pg:"updated_at,use_zero"`

	Event *Event `pg:"fk:event_id,rel:has-one"`
}
