package handler

import (
	"book-review-api/common"
	"book-review-api/model"
	"book-review-api/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey   contextKey = "userID"
	UserRoleKey contextKey = "userRole"
	ClaimsKey   contextKey = "claims"
)

// AuthMiddleware holds the token guards. Every guarded request walks
// the same pipeline: extract bearer credential, decode, check the
// token kind, check the revocation blocklist, then hand the claims to
// the next handler through the request context.
type AuthMiddleware struct {
	auth      *service.AuthService
	blocklist service.ITokenBlocklist
}

func NewAuthMiddleware(auth *service.AuthService, blocklist service.ITokenBlocklist) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, blocklist: blocklist}
}

// authenticate runs the shared part of the guard pipeline and returns
// the verified claims, or the AppError to send. wantRefresh selects
// which token kind is acceptable.
func (m *AuthMiddleware) authenticate(r *http.Request, wantRefresh bool) (*model.AppClaims, *common.AppError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, common.NewAppError(http.StatusUnauthorized, common.CodeInvalidToken, "Authorization header is required", nil)
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return nil, common.NewAppError(http.StatusUnauthorized, common.CodeInvalidToken, "Invalid authorization header format", nil)
	}

	claims, err := m.auth.ParseToken(headerParts[1])
	if err != nil {
		return nil, common.ErrInvalidToken(err)
	}

	if claims.Refresh != wantRefresh {
		if wantRefresh {
			return nil, common.NewAppError(http.StatusForbidden, common.CodeRefreshTokenRequired, "Please provide a refresh token", nil)
		}
		return nil, common.NewAppError(http.StatusForbidden, common.CodeAccessTokenRequired, "Please provide an access token", nil)
	}

	// The blocklist check is fail-closed: if the store cannot be
	// reached the token is not trusted.
	revoked, err := m.blocklist.IsRevoked(r.Context(), claims.ID)
	if err != nil {
		return nil, common.NewAppError(http.StatusUnauthorized, common.CodeTokenRevoked, "Could not verify token, please log in again", err)
	}
	if revoked {
		return nil, common.ErrTokenRevoked()
	}

	return claims, nil
}

func withClaims(r *http.Request, claims *model.AppClaims) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
	ctx = context.WithValue(ctx, ClaimsKey, claims)
	return r.WithContext(ctx)
}

// RequireAccessToken guards ordinary API routes. Refresh tokens are
// rejected here so a long-lived, narrow-purpose credential cannot
// authorize regular requests.
func (m *AuthMiddleware) RequireAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, appErr := m.authenticate(r, false)
		if appErr != nil {
			appErr.Send(w)
			return
		}
		next.ServeHTTP(w, withClaims(r, claims))
	})
}

// RequireRefreshToken guards the token refresh exchange only.
func (m *AuthMiddleware) RequireRefreshToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, appErr := m.authenticate(r, true)
		if appErr != nil {
			appErr.Send(w)
			return
		}
		next.ServeHTTP(w, withClaims(r, claims))
	})
}

// RequireRoles restricts a route to principals whose role is in the
// allow-list. It composes strictly after one of the token guards and
// reads the role the guard put into the context.
func (m *AuthMiddleware) RequireRoles(roles ...model.Role) func(http.Handler) http.Handler {
	allowed := make(map[model.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(UserRoleKey).(model.Role)
			if !ok || !allowed[role] {
				common.ErrInsufficientPermissions().Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
