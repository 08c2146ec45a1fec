package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barrio/internal/models/db_models"
	"barrio/pkg/utils"
)

type stubAccountRepo struct {
	accounts map[string]*db_models.Account
}

func (r *stubAccountRepo) Insert(ctx context.Context, account *db_models.Account) error { return nil }
func (r *stubAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return nil, nil
}
func (r *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return nil, nil
}
func (r *stubAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	return r.accounts[username], nil
}
func (r *stubAccountRepo) FindAll(ctx context.Context) ([]db_models.Account, error) {
	return nil, nil
}
func (r *stubAccountRepo) Save(ctx context.Context, account *db_models.Account) error   { return nil }
func (r *stubAccountRepo) Delete(ctx context.Context, account *db_models.Account) error { return nil }

func newAuthTestRouter(t *testing.T) (*gin.Engine, *utils.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	repo := &stubAccountRepo{accounts: map[string]*db_models.Account{
		"alice": {ID: "account-1", Username: "alice", Type: db_models.AccountTypeUser},
		"root":  {ID: "account-2", Username: "root", Type: db_models.AccountTypeAdmin},
	}}

	r := gin.New()
	private := r.Group("", AuthMiddleware(tokens, repo))
	private.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentAccount(c).Username)
	})

	admin := private.Group("", AdminMiddleware())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, tokens
}

func TestAuthMiddleware(t *testing.T) {
	router, tokens := newAuthTestRouter(t)

	signFor := func(t *testing.T, username, role string) string {
		t.Helper()
		token, _, err := tokens.CreateToken(username, role)
		require.NoError(t, err)
		return token
	}

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cookie token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signFor(t, "alice", "user")})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, "alice", "user"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, "ghost", "user"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		other := utils.NewTokenManager("other-secret", time.Hour)
		forged, _, err := other.CreateToken("alice", "admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin gate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, "alice", "user"))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, "root", "admin"))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
