package eventfaq

import (
	"context"

	"github.com/partyplan/faq/internal/db"
)

// Repository is the persistence the manager needs. *db.Repository satisfies it
// through pgRepository.
type Repository interface {
	EventByID(ctx context.Context, eventID int) (*db.Event, error)
	ParticipantByUser(ctx context.Context, eventID, userID int) (*db.Participant, error)
	InviteByToken(ctx context.Context, token string) (*db.Invite, error)

	Questions(ctx context.Context, eventID int, publishedOnly bool) ([]db.Question, error)
	QuestionByID(ctx context.Context, eventID, questionID int) (*db.Question, error)
	MaxQuestionOrder(ctx context.Context, eventID int, published bool, categoryID *int) (int, error)
	CreateQuestion(ctx context.Context, question *db.Question) error
	UpdateQuestion(ctx context.Context, question *db.Question, columns ...string) error
	DeleteQuestion(ctx context.Context, question *db.Question) error
	SetAskers(ctx context.Context, questionID int, userIDs []int) error

	Categories(ctx context.Context, eventID int) ([]db.QuestionCategory, error)
	CategoryByID(ctx context.Context, eventID, categoryID int) (*db.QuestionCategory, error)
	MaxDisplayOrder(ctx context.Context, eventID int) (int, error)
	CreateCategory(ctx context.Context, category *db.QuestionCategory) error
	UpdateCategory(ctx context.Context, category *db.QuestionCategory, columns ...string) error
	DeleteCategory(ctx context.Context, category *db.QuestionCategory) error

	RunInTransaction(ctx context.Context, fn func(tx Repository) error) error
}

type pgRepository struct {
	*db.Repository
}

func (r pgRepository) RunInTransaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.Repository.RunInTransaction(ctx, func(tx *db.Repository) error {
		return fn(pgRepository{tx})
	})
}
