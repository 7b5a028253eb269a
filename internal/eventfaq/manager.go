package eventfaq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/partyplan/faq/internal/db"
	"github.com/partyplan/faq/internal/faq"
)

type Manager struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewManager(repo *db.Repository, cache Cache, logger *slog.Logger) *Manager {
	return newManager(pgRepository{repo}, cache, logger)
}

func newManager(repo Repository, cache Cache, logger *slog.Logger) *Manager {
	if cache == nil {
		cache = NopCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// readAccess checks that the viewer may read the FAQ of an event and reports
// whether the viewer hosts it. Registered users must be participants, anyone
// else needs an invite to the event.
func (m *Manager) readAccess(ctx context.Context, v Viewer, eventID int) (bool, error) {
	event, err := m.repo.EventByID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("db get event: %w", err)
	} else if event == nil {
		return false, newError(ErrEventNotFound, "Event not found")
	}

	switch {
	case v.Registered():
		p, err := m.repo.ParticipantByUser(ctx, eventID, *v.UserID)
		if err != nil {
			return false, fmt.Errorf("db get participant: %w", err)
		}
		if p != nil {
			return p.Role == db.RoleHost, nil
		}
	case v.InviteToken != "":
		invite, err := m.repo.InviteByToken(ctx, v.InviteToken)
		if err != nil {
			return false, fmt.Errorf("db get invite: %w", err)
		}
		if invite != nil && invite.EventID == eventID {
			return false, nil
		}
	}

	return false, newError(ErrUnauthenticated, "Authentication required")
}

// requireHost allows registered hosts of the event only.
func (m *Manager) requireHost(ctx context.Context, v Viewer, eventID int, action string) error {
	if !v.Registered() {
		return newError(ErrUnauthenticated, "Authentication required")
	}

	isHost, err := m.isHost(ctx, eventID, *v.UserID)
	if err != nil {
		return err
	}
	if !isHost {
		return newError(ErrForbidden, "Only hosts can %s", action)
	}

	return nil
}

func (m *Manager) isHost(ctx context.Context, eventID, userID int) (bool, error) {
	p, err := m.repo.ParticipantByUser(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("db get participant: %w", err)
	}

	return p != nil && p.Role == db.RoleHost, nil
}

func (m *Manager) invalidate(ctx context.Context, eventID int) {
	if err := m.cache.Invalidate(ctx, eventID); err != nil {
		m.logger.WarnContext(ctx, "failed to invalidate faq cache", "eventId", eventID, "error", err)
	}
}

// Board returns the ordering model of an event as the viewer sees it.
func (m *Manager) Board(ctx context.Context, v Viewer, eventID int) (*faq.Store, error) {
	categories, err := m.Categories(ctx, v, eventID)
	if err != nil {
		return nil, err
	}

	questions, err := m.Questions(ctx, v, eventID)
	if err != nil {
		return nil, err
	}

	return NewStore(categories, questions), nil
}

// renumber closes the gaps of one container after a question left it.
func (m *Manager) renumber(ctx context.Context, tx Repository, eventID int, c faq.Container) error {
	rows, err := tx.Questions(ctx, eventID, false)
	if err != nil {
		return fmt.Errorf("db get questions: %w", err)
	}

	var members []*db.Question
	var list []faq.Question
	for i := range rows {
		q := NewQuestion(&rows[i]).FAQ()
		if faq.ContainerOf(q) != c {
			continue
		}
		members = append(members, &rows[i])
		list = append(list, q)
	}

	for i, placed := range faq.Renumber(list, c) {
		if placed.Order() == list[i].Order() {
			continue
		}

		applyPlacement(members[i], placed)
		if err := tx.UpdateQuestion(ctx, members[i], placementColumns...); err != nil {
			return fmt.Errorf("db renumber question: %w", err)
		}
	}

	return nil
}
