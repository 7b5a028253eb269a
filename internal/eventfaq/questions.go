package eventfaq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/partyplan/faq/internal/db"
	"github.com/partyplan/faq/internal/faq"
)

// Questions lists the questions of an event. Hosts see drafts as well, everyone
// else sees published questions only. Published questions come first.
func (m *Manager) Questions(ctx context.Context, v Viewer, eventID int) ([]Question, error) {
	isHost, err := m.readAccess(ctx, v, eventID)
	if err != nil {
		return nil, err
	}

	if !isHost {
		cached, ok, err := m.cache.PublishedQuestions(ctx, eventID)
		if err != nil {
			m.logger.WarnContext(ctx, "failed to read faq cache", "eventId", eventID, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	rows, err := m.repo.Questions(ctx, eventID, !isHost)
	if err != nil {
		return nil, fmt.Errorf("db get questions: %w", err)
	}
	questions := NewQuestions(rows)

	if !isHost {
		if err := m.cache.SetPublishedQuestions(ctx, eventID, questions); err != nil {
			m.logger.WarnContext(ctx, "failed to fill faq cache", "eventId", eventID, "error", err)
		}
	}

	return questions, nil
}

// CreateQuestion adds a question at the end of its container. Registered users
// are recorded as askers; anonymous guests need an invite to the event and
// cannot publish.
func (m *Manager) CreateQuestion(ctx context.Context, v Viewer, eventID int, in QuestionCreate) (*Question, error) {
	if err := m.checkAsker(ctx, v, eventID, in); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.QuestionText)
	if text == "" {
		return nil, newError(ErrInvalidInput, "Question text is required")
	}
	if in.IsPublished && !hasAnswer(in.AnswerText) {
		return nil, newError(ErrInvalidInput, "Published questions must include an answer")
	}
	if !in.IsPublished && in.CategoryID != nil {
		return nil, newError(ErrInvalidInput, "Draft questions cannot have a category")
	}

	if in.CategoryID != nil {
		category, err := m.repo.CategoryByID(ctx, eventID, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			return nil, newError(ErrInvalidInput, "Invalid category for this event")
		}
	}

	question := &db.Question{
		EventID:      eventID,
		QuestionText: text,
		AnswerText:   in.AnswerText,
		CategoryID:   in.CategoryID,
		IsPublished:  in.IsPublished,
		UserID:       v.UserID,
	}

	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		last, err := tx.MaxQuestionOrder(ctx, eventID, in.IsPublished, in.CategoryID)
		if err != nil {
			return fmt.Errorf("db get max order: %w", err)
		}

		next := last + 1
		if in.IsPublished {
			now := time.Now()
			question.PublishedOrder = &next
			question.PublishedAt = &now
		} else {
			question.DraftOrder = &next
		}

		if err := tx.CreateQuestion(ctx, question); err != nil {
			return fmt.Errorf("db create question: %w", err)
		}

		if v.Registered() {
			if err := tx.SetAskers(ctx, question.ID, []int{*v.UserID}); err != nil {
				return fmt.Errorf("db set askers: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if question.IsPublished {
		m.invalidate(ctx, eventID)
	}

	created := NewQuestion(question)
	if v.Registered() {
		created.AskerUserIDs = []int{*v.UserID}
	}

	return &created, nil
}

func (m *Manager) checkAsker(ctx context.Context, v Viewer, eventID int, in QuestionCreate) error {
	if v.Registered() {
		event, err := m.repo.EventByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("db get event: %w", err)
		} else if event == nil {
			return newError(ErrEventNotFound, "Event not found")
		}

		if !in.IsPublished {
			return nil
		}

		isHost, err := m.isHost(ctx, eventID, *v.UserID)
		if err != nil {
			return err
		}
		if !isHost {
			return newError(ErrForbidden, "Only hosts can publish questions")
		}

		return nil
	}

	token := in.InviteToken
	if token == "" {
		token = v.InviteToken
	}
	if token == "" {
		return newError(ErrUnauthenticated, "Authentication required")
	}

	invite, err := m.repo.InviteByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("db get invite: %w", err)
	} else if invite == nil {
		return newError(ErrForbidden, "Invalid or expired invite token")
	}
	if invite.EventID != eventID {
		return newError(ErrForbidden, "Invite token does not match event")
	}

	event, err := m.repo.EventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("db get event: %w", err)
	} else if event == nil {
		return newError(ErrEventNotFound, "Event not found")
	}

	if in.IsPublished {
		return newError(ErrForbidden, "Anonymous users cannot publish questions")
	}

	return nil
}

// UpdateOrder applies a question order in one transaction. Publishing stamps
// published_at once; unpublishing clears it.
func (m *Manager) UpdateOrder(ctx context.Context, v Viewer, eventID int, order faq.QuestionOrder) error {
	if err := m.requireHost(ctx, v, eventID, "reorder questions"); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(order.Items))
	for _, it := range order.Items {
		if _, ok := seen[it.QuestionID]; ok {
			return newError(ErrInvalidInput, "Question %d is listed more than once", it.QuestionID)
		}
		seen[it.QuestionID] = struct{}{}

		if !it.IsPublished && it.CategoryID != nil {
			return newError(ErrInvalidInput, "Draft questions cannot have a category")
		}
		if it.Order() < 1 {
			return newError(ErrInvalidInput, "Question %d needs a positive order", it.QuestionID)
		}
	}

	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		rows, err := tx.Categories(ctx, eventID)
		if err != nil {
			return fmt.Errorf("db get categories: %w", err)
		}
		categories := make(map[int]struct{}, len(rows))
		for _, c := range rows {
			categories[c.ID] = struct{}{}
		}

		now := time.Now()
		for _, it := range order.Items {
			question, err := tx.QuestionByID(ctx, eventID, it.QuestionID)
			if err != nil {
				return fmt.Errorf("db get question: %w", err)
			} else if question == nil {
				return newError(ErrQuestionNotFound, "Question not found")
			}

			if it.IsPublished && !hasAnswer(question.AnswerText) {
				return newError(ErrInvalidInput, "Published questions must include an answer")
			}
			if it.CategoryID != nil {
				if _, ok := categories[*it.CategoryID]; !ok {
					return newError(ErrInvalidInput, "Invalid category for this event")
				}
			}

			question.IsPublished = it.IsPublished
			question.CategoryID = it.CategoryID
			question.PublishedOrder = nil
			question.DraftOrder = nil
			if it.IsPublished {
				question.PublishedOrder = it.PublishedOrder
				if question.PublishedAt == nil {
					question.PublishedAt = &now
				}
			} else {
				question.DraftOrder = it.DraftOrder
				question.PublishedAt = nil
			}

			columns := append([]string{db.Columns.Question.PublishedAt}, placementColumns...)
			if err := tx.UpdateQuestion(ctx, question, columns...); err != nil {
				return fmt.Errorf("db update question order: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.invalidate(ctx, eventID)
	return nil
}

// UpdateQuestion edits the text, the answer, or the askers of a question.
func (m *Manager) UpdateQuestion(ctx context.Context, v Viewer, eventID, questionID int, in QuestionUpdate) (*Question, error) {
	if err := m.requireHost(ctx, v, eventID, "update questions"); err != nil {
		return nil, err
	}

	var updated *db.Question
	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		question, err := tx.QuestionByID(ctx, eventID, questionID)
		if err != nil {
			return fmt.Errorf("db get question: %w", err)
		} else if question == nil {
			return newError(ErrQuestionNotFound, "Question not found")
		}

		var columns []string
		if in.QuestionText != nil {
			text := strings.TrimSpace(*in.QuestionText)
			if text == "" {
				return newError(ErrInvalidInput, "Question text is required")
			}
			question.QuestionText = text
			columns = append(columns, db.Columns.Question.QuestionText)
		}
		if in.AnswerText != nil {
			if question.IsPublished && !hasAnswer(in.AnswerText) {
				return newError(ErrInvalidInput, "Published questions must include an answer")
			}
			answer := *in.AnswerText
			question.AnswerText = &answer
			columns = append(columns, db.Columns.Question.AnswerText)
		}

		if len(columns) > 0 {
			if err := tx.UpdateQuestion(ctx, question, columns...); err != nil {
				return fmt.Errorf("db update question: %w", err)
			}
		}

		if in.AskerUserIDs != nil {
			if err := tx.SetAskers(ctx, question.ID, in.AskerUserIDs); err != nil {
				return fmt.Errorf("db set askers: %w", err)
			}
		}

		updated, err = tx.QuestionByID(ctx, eventID, questionID)
		if err != nil {
			return fmt.Errorf("db get question: %w", err)
		} else if updated == nil {
			return newError(ErrQuestionNotFound, "Question not found")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.IsPublished {
		m.invalidate(ctx, eventID)
	}

	question := NewQuestion(updated)
	return &question, nil
}

// DeleteQuestion removes a question and closes the gap it leaves.
func (m *Manager) DeleteQuestion(ctx context.Context, v Viewer, eventID, questionID int) error {
	if err := m.requireHost(ctx, v, eventID, "delete questions"); err != nil {
		return err
	}

	var published bool
	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		question, err := tx.QuestionByID(ctx, eventID, questionID)
		if err != nil {
			return fmt.Errorf("db get question: %w", err)
		} else if question == nil {
			return newError(ErrQuestionNotFound, "Question not found")
		}
		published = question.IsPublished

		if err := tx.DeleteQuestion(ctx, question); err != nil {
			return fmt.Errorf("db delete question: %w", err)
		}

		return m.renumber(ctx, tx, eventID, faq.ContainerOf(NewQuestion(question).FAQ()))
	})
	if err != nil {
		return err
	}

	if published {
		m.invalidate(ctx, eventID)
	}

	return nil
}

func hasAnswer(answer *string) bool {
	return answer != nil && strings.TrimSpace(*answer) != ""
}
