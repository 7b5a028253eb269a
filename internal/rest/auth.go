package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/partyplan/faq/internal/eventfaq"
)

const (
	accessTokenCookie = "access_token"
	userIDKey         = "userId"
)

var (
	errInvalidToken = errors.New("invalid token")
	errNoSecret     = errors.New("jwt secret is not configured")
)

type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Authenticator reads HS256 access tokens. Requests without a token pass
// through anonymously. With an empty secret every token is rejected.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Token(userID int, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", errNoSecret
	}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Authenticator) Parse(tokenString string) (int, error) {
	if len(a.secret) == 0 {
		return 0, fmt.Errorf("%w: %w", errInvalidToken, errNoSecret)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, errInvalidToken
	}

	return claims.UserID, nil
}

func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request())
			if raw == "" {
				return next(c)
			}

			userID, err := a.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}

			c.Set(userIDKey, userID)
			c.SetRequest(c.Request().WithContext(eventfaq.WithUserID(c.Request().Context(), userID)))
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get(echo.HeaderAuthorization); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// viewer builds the caller identity from the authenticated user and the
// invite token of the request, if any.
func viewer(c echo.Context, inviteToken string) eventfaq.Viewer {
	v := eventfaq.InviteViewer(inviteToken)
	if id, ok := c.Get(userIDKey).(int); ok {
		v.UserID = &id
	}
	return v
}
