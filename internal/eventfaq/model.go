package eventfaq

import (
	"context"

	"github.com/partyplan/faq/internal/db"
)

// Viewer identifies who is calling: a registered user, an invite token holder,
// or nobody.
type Viewer struct {
	UserID      *int
	InviteToken string
}

func UserViewer(userID int) Viewer {
	return Viewer{UserID: &userID}
}

func InviteViewer(token string) Viewer {
	return Viewer{InviteToken: token}
}

func (v Viewer) Registered() bool { return v.UserID != nil }

type userIDKey struct{}

// WithUserID stores the authenticated user in ctx.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// ViewerFromContext returns the viewer for the authenticated user in ctx, with
// the given invite token.
func ViewerFromContext(ctx context.Context, inviteToken string) Viewer {
	v := InviteViewer(inviteToken)
	if id, ok := ctx.Value(userIDKey{}).(int); ok {
		v.UserID = &id
	}
	return v
}

type Question struct {
	db.Question
	AskerUserIDs []int
}

type Category struct {
	db.QuestionCategory
}

type QuestionCreate struct {
	QuestionText string
	AnswerText   *string
	CategoryID   *int
	IsPublished  bool
	// InviteToken is the anonymous path when the viewer is not registered.
	InviteToken string
}

// QuestionUpdate changes the non-nil fields only.
type QuestionUpdate struct {
	QuestionText *string
	AnswerText   *string
	AskerUserIDs []int
}
