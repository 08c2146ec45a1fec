package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"barrio/internal/models/db_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

// AccessTokenCookie is the HTTP-only cookie set at login.
const AccessTokenCookie = "access_token"

// AccountKey is the context key the authenticated account is stored under.
const AccountKey = "account"

// AuthMiddleware resolves the access token from the cookie, falling back to a
// Bearer header, and loads the account behind it into the request context.
// Every failure collapses into the same 401 so callers cannot probe which
// part was wrong.
func AuthMiddleware(tokens *utils.TokenManager, accountRepo repositories.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		account, err := accountRepo.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil || account == nil {
			unauthorized(c)
			return
		}

		c.Set(AccountKey, account)
		c.Next()
	}
}

// AdminMiddleware gates a route group to admin accounts. It runs after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil || !account.IsAdmin() {
			utils.RespondError(c, http.StatusForbidden, utils.ErrAdminRequired.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the account AuthMiddleware stored, or nil on public
// routes.
func CurrentAccount(c *gin.Context) *db_models.Account {
	value, ok := c.Get(AccountKey)
	if !ok {
		return nil
	}
	account, ok := value.(*db_models.Account)
	if !ok {
		return nil
	}
	return account
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func unauthorized(c *gin.Context) {
	utils.RespondError(c, http.StatusUnauthorized, "could not validate credentials")
	c.Abort()
}
