package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	RoleHost  = "host"
	RoleGuest = "guest"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction calls fn with a repository bound to a transaction. Inside an
// existing transaction fn joins it.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(tx *Repository) error) error {
	if _, ok := r.db.(*pg.Tx); ok {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

func (r *Repository) EventByID(ctx context.Context, eventID int) (*Event, error) {
	event := &Event{}
	err := r.db.ModelContext(ctx, event).
		Where(`"t"."id" = ?`, eventID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return event, nil
}

func (r *Repository) ParticipantByUser(ctx context.Context, eventID, userID int) (*Participant, error) {
	participant := &Participant{}
	err := r.db.ModelContext(ctx, participant).
		Where(`"t"."event_id" = ?`, eventID).
		Where(`"t"."user_id" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}

func (r *Repository) InviteByToken(ctx context.Context, token string) (*Invite, error) {
	invite := &Invite{}
	err := r.db.ModelContext(ctx, invite).
		Where(`"t"."token" = ?`, token).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get invite by token: %w", err)
	}

	return invite, nil
}

// Questions returns the questions of an event with their askers: published
// first, then by published order, then by draft order.
func (r *Repository) Questions(ctx context.Context, eventID int, publishedOnly bool) ([]Question, error) {
	var questions []Question
	query := r.db.ModelContext(ctx, &questions).
		Relation("Askers").
		Where(`"t"."event_id" = ?`, eventID)

	if publishedOnly {
		query = query.Where(`"t"."is_published" = TRUE`)
	}

	err := query.
		OrderExpr(`"t"."is_published" DESC`).
		OrderExpr(`"t"."published_order" ASC NULLS LAST`).
		OrderExpr(`"t"."draft_order" ASC NULLS LAST`).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	return questions, nil
}

func (r *Repository) QuestionByID(ctx context.Context, eventID, questionID int) (*Question, error) {
	question := &Question{}
	err := r.db.ModelContext(ctx, question).
		Relation("Askers").
		Where(`"t"."event_id" = ?`, eventID).
		Where(`"t"."id" = ?`, questionID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}

	return question, nil
}

// MaxQuestionOrder returns the largest order number used in a container, or 0
// for an empty one. Drafts ignore categoryID.
func (r *Repository) MaxQuestionOrder(ctx context.Context, eventID int, published bool, categoryID *int) (int, error) {
	column := `"t"."draft_order"`
	if published {
		column = `"t"."published_order"`
	}

	query := r.db.ModelContext(ctx, (*Question)(nil)).
		ColumnExpr(`COALESCE(MAX(`+column+`), 0)`).
		Where(`"t"."event_id" = ?`, eventID).
		Where(`"t"."is_published" = ?`, published)

	if published {
		if categoryID == nil {
			query = query.Where(`"t"."category_id" IS NULL`)
		} else {
			query = query.Where(`"t"."category_id" = ?`, *categoryID)
		}
	}

	var maxOrder int
	if err := query.Select(pg.Scan(&maxOrder)); err != nil {
		return 0, fmt.Errorf("failed to get max question order: %w", err)
	}

	return maxOrder, nil
}

func (r *Repository) CreateQuestion(ctx context.Context, question *Question) error {
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, question).Insert(); err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}

	return nil
}

// UpdateQuestion writes the given columns, or every column when none is given.
func (r *Repository) UpdateQuestion(ctx context.Context, question *Question, columns ...string) error {
	question.UpdatedAt = time.Now()
	query := r.db.ModelContext(ctx, question).WherePK()
	if len(columns) > 0 {
		query = query.Column(withColumn(columns, Columns.Question.UpdatedAt)...)
	}

	res, err := query.Update()
	if err != nil {
		return fmt.Errorf("failed to update question %d: %w", question.ID, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("failed to update question %d: %w", question.ID, pg.ErrNoRows)
	}

	return nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, question *Question) error {
	if _, err := r.db.ModelContext(ctx, question).WherePK().Delete(); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", question.ID, err)
	}

	return nil
}

// SetAskers replaces the askers of a question.
func (r *Repository) SetAskers(ctx context.Context, questionID int, userIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*QuestionAsker)(nil)).
		Where(`"t"."question_id" = ?`, questionID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear askers of question %d: %w", questionID, err)
	}

	if len(userIDs) == 0 {
		return nil
	}

	now := time.Now()
	askers := make([]QuestionAsker, 0, len(userIDs))
	seen := make(map[int]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		askers = append(askers, QuestionAsker{QuestionID: questionID, UserID: id, CreatedAt: now})
	}

	if _, err := r.db.ModelContext(ctx, &askers).Insert(); err != nil {
		return fmt.Errorf("failed to insert askers of question %d: %w", questionID, err)
	}

	return nil
}

func (r *Repository) Categories(ctx context.Context, eventID int) ([]QuestionCategory, error) {
	var categories []QuestionCategory
	err := r.db.ModelContext(ctx, &categories).
		Where(`"t"."event_id" = ?`, eventID).
		OrderExpr(`"t"."display_order" ASC`).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, eventID, categoryID int) (*QuestionCategory, error) {
	category := &QuestionCategory{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."event_id" = ?`, eventID).
		Where(`"t"."id" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) MaxDisplayOrder(ctx context.Context, eventID int) (int, error) {
	var maxOrder int
	err := r.db.ModelContext(ctx, (*QuestionCategory)(nil)).
		ColumnExpr(`COALESCE(MAX("t"."display_order"), 0)`).
		Where(`"t"."event_id" = ?`, eventID).
		Select(pg.Scan(&maxOrder))

	if err != nil {
		return 0, fmt.Errorf("failed to get max display order: %w", err)
	}

	return maxOrder, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *QuestionCategory) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *QuestionCategory, columns ...string) error {
	category.UpdatedAt = time.Now()
	query := r.db.ModelContext(ctx, category).WherePK()
	if len(columns) > 0 {
		query = query.Column(withColumn(columns, Columns.QuestionCategory.UpdatedAt)...)
	}

	res, err := query.Update()
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("failed to update category %d: %w", category.ID, pg.ErrNoRows)
	}

	return nil
}

// DeleteCategory removes a category. Its questions keep existing with a NULL
// category_id.
func (r *Repository) DeleteCategory(ctx context.Context, category *QuestionCategory) error {
	if _, err := r.db.ModelContext(ctx, category).WherePK().Delete(); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", category.ID, err)
	}

	return nil
}

func withColumn(columns []string, column string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, columns...)
	return append(out, column)
}
