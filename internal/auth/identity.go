package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Forwarded-identity headers set by the authenticating gateway in front of the
// service. The service trusts them as-is and does no verification of its own.
const (
	HeaderPreferredUsername = "X-Forwarded-Preferred-Username"
	HeaderUserID            = "X-Forwarded-User"
	HeaderEmail             = "X-Forwarded-Email"
)

// UserInfo is the caller principal derived from the forwarded headers.
// All fields may be empty; an empty UserID means the request is anonymous.
type UserInfo struct {
	PreferredUsername string `json:"preferred_username"`
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
}

type contextKey struct{}

// FromContext returns the UserInfo attached by UserInfoMiddleware.
// The zero value is returned if the middleware did not run.
func FromContext(ctx context.Context) UserInfo {
	u, _ := ctx.Value(contextKey{}).(UserInfo)
	return u
}

// WithUserInfo returns a context carrying the given identity. Exposed for tests
// that exercise the service layer without an HTTP request.
func WithUserInfo(ctx context.Context, u UserInfo) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserInfoMiddleware builds the caller identity from the forwarded headers and
// attaches it to the request context. Missing headers yield empty fields, not
// an error: rejection of anonymous callers is the service layer's job.
func UserInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := fromHeaders(c.Request.Header)
		c.Request = c.Request.WithContext(WithUserInfo(c.Request.Context(), u))
		c.Next()
	}
}

func fromHeaders(h http.Header) UserInfo {
	return UserInfo{
		PreferredUsername: h.Get(HeaderPreferredUsername),
		UserID:            h.Get(HeaderUserID),
		Email:             h.Get(HeaderEmail),
	}
}
