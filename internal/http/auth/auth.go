// Package auth authenticates requests with HMAC-signed bearer tokens and
// places the resulting actor in the request context.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
)

type contextKey struct{}

type Claims struct {
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
	jwt.RegisteredClaims
}

// Middleware rejects requests without a valid token. The subject claim is
// the user ID; role and department_id carry the authorization context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			caller, err := parse(token, secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), caller)))
		})
	}
}

func parse(token, secret string) (actor.Actor, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return actor.Actor{}, err
	}

	if !parsed.Valid {
		return actor.Actor{}, jwt.ErrTokenInvalidClaims
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}

	role := actor.Role(claims.Role)
	if !role.Valid() {
		return actor.Actor{}, jwt.ErrTokenInvalidClaims
	}

	departmentID, err := uuid.Parse(claims.DepartmentID)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.Actor{ID: id, Role: role, DepartmentID: departmentID}, nil
}

func WithActor(ctx context.Context, a actor.Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the authenticated actor. The zero actor is returned
// when the middleware did not run, which no role matches.
func FromContext(ctx context.Context) actor.Actor {
	a, _ := ctx.Value(contextKey{}).(actor.Actor)
	return a
}
