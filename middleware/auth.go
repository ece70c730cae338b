package middleware

import (
	"net/http"
	"strings"

	"campus-backend/utils"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth.
const (
	ContextUserKey = "user"
	ContextRoleKey = "role"

	RoleAdmin = "admin"
)

// Claims carried by bearer tokens from the campus auth provider.
// Identity is the email claim, falling back to the registered subject.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates the HS256 bearer token and stores the caller's
// identity and role on the request context. A missing or invalid
// credential ends the request with 401; the client contract is to
// discard its cached token on that status.
func RequireAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		user := strings.TrimSpace(claims.Email)
		if user == "" {
			user = strings.TrimSpace(claims.Subject)
		}
		if user == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates a route group on the admin role claim. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(ContextRoleKey)
		role, _ := v.(string)
		if role != RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "error.forbidden", "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal set by RequireAuth.
func CurrentUser(c *gin.Context) string {
	v, _ := c.Get(ContextUserKey)
	user, _ := v.(string)
	return user
}

func abortUnauthorized(c *gin.Context) {
	utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing or invalid credentials")
	c.Abort()
}
