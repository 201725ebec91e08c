package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureIdentity(t *testing.T, set func(*http.Request)) UserInfo {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got UserInfo
	r.GET("/", UserInfoMiddleware(), func(c *gin.Context) {
		got = FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	set(req)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return got
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	got := captureIdentity(t, func(req *http.Request) {
		req.Header.Set(HeaderPreferredUsername, "ada")
		req.Header.Set(HeaderUserID, "u1")
		req.Header.Set(HeaderEmail, "ada@example.com")
	})
	assert.Equal(t, UserInfo{PreferredUsername: "ada", UserID: "u1", Email: "ada@example.com"}, got)
}

func TestMiddlewareWithoutHeadersYieldsEmptyIdentity(t *testing.T) {
	// Anonymous requests still pass through; rejection happens downstream.
	got := captureIdentity(t, func(*http.Request) {})
	assert.Equal(t, UserInfo{}, got)
}

func TestFromContextZeroValueWhenUnset(t *testing.T) {
	assert.Equal(t, UserInfo{}, FromContext(context.Background()))
}
