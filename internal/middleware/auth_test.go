package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitstacklabs/fitness-api/internal/token"
)

func newTestRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	secured := r.Group("/")
	secured.Use(RequireAuth(tokens))
	{
		secured.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"userId": c.MustGet(ContextUserID)})
		})

		admin := secured.Group("/")
		admin.Use(RequireAdmin())
		admin.GET("/admin-only", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}

	return r
}

func doRequest(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newTestRouter(token.NewService("test-secret"))

	w := doRequest(r, http.MethodGet, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"missing_authorization_header"}`, w.Body.String())
}

func TestRequireAuthBadScheme(t *testing.T) {
	r := newTestRouter(token.NewService("test-secret"))

	w := doRequest(r, http.MethodGet, "/whoami", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid_authorization_header"}`, w.Body.String())
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := newTestRouter(token.NewService("test-secret"))

	w := doRequest(r, http.MethodGet, "/whoami", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid_token"}`, w.Body.String())
}

func TestRequireAuthWrongSecret(t *testing.T) {
	other := token.NewService("other-secret")
	tokenString, err := other.Issue("user-1", false)
	require.NoError(t, err)

	r := newTestRouter(token.NewService("test-secret"))

	w := doRequest(r, http.MethodGet, "/whoami", "Bearer "+tokenString)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSuccess(t *testing.T) {
	tokens := token.NewService("test-secret")
	tokenString, err := tokens.Issue("user-1", false)
	require.NoError(t, err)

	r := newTestRouter(tokens)

	w := doRequest(r, http.MethodGet, "/whoami", "Bearer "+tokenString)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
}

func TestRequireAdminRejectsOrdinaryUser(t *testing.T) {
	tokens := token.NewService("test-secret")
	tokenString, err := tokens.Issue("user-1", false)
	require.NoError(t, err)

	r := newTestRouter(tokens)

	w := doRequest(r, http.MethodGet, "/admin-only", "Bearer "+tokenString)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	tokens := token.NewService("test-secret")
	tokenString, err := tokens.Issue("admin-1", true)
	require.NoError(t, err)

	r := newTestRouter(tokens)

	w := doRequest(r, http.MethodGet, "/admin-only", "Bearer "+tokenString)
	assert.Equal(t, http.StatusOK, w.Code)
}
