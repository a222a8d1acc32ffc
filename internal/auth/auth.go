// Package auth issues and validates bearer tokens and carries the
// authenticated user through request context.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adishm/hackarena/internal/models"
)

// TokenExpiry matches the long-lived sessions participants expect over a
// multi-week event.
const TokenExpiry = 30 * 24 * time.Hour

type contextKey string

const userKey contextKey = "user"

// Claims is the JWT payload. Only the user ID is trusted; the rest of the
// account is reloaded on every request so role and team changes take
// effect immediately.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// UserLoader fetches the account for an authenticated user ID
type UserLoader interface {
	Profile(ctx context.Context, userID int) (*models.User, error)
}

// Auth signs tokens and gates requests on them
type Auth struct {
	secret []byte
	users  UserLoader
}

// New creates a new Auth instance
func New(secret string, users UserLoader) *Auth {
	return &Auth{secret: []byte(secret), users: users}
}

// GenerateToken signs a bearer token for the user
func (a *Auth) GenerateToken(userID int) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ParseToken validates a token string and returns its claims
func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// UserFromRequest resolves the bearer token on a request to a full account
func (a *Auth) UserFromRequest(r *http.Request) (*models.User, bool) {
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := a.ParseToken(tokenString)
	if err != nil {
		return nil, false
	}

	user, err := a.users.Profile(r.Context(), claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireUser middleware rejects unauthenticated requests with 401 and
// stores the account in the request context
func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.UserFromRequest(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin middleware rejects non-admin requests with 403. It must run
// inside RequireUser.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || user.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"code":"FORBIDDEN","error":"Admin access required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser stores the account in a context
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom retrieves the account from a context
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
