package users_middleware

import (
	"net/http"
	"strings"

	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"
	users_services "allocboard/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "allocboard_session"

// Capability sets. Every protected endpoint declares exactly one of
// these; the check itself lives in RequireRole.
var (
	AnyAuthenticated = []users_enums.Role{users_enums.RoleViewer, users_enums.RoleUser, users_enums.RoleAdmin}
	UserOrAdmin      = []users_enums.Role{users_enums.RoleUser, users_enums.RoleAdmin}
	AdminOnly        = []users_enums.Role{users_enums.RoleAdmin}
)

// AuthMiddleware validates the session token and adds the session to
// the gin context. The token travels in a cookie for browser flows and
// may come as a Bearer header from API clients.
func AuthMiddleware(authService *users_services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := sessionToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			ctx.Abort()
			return
		}

		session, err := authService.SessionFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			ctx.Abort()
			return
		}

		ctx.Set("session", session)
		ctx.Next()
	}
}

// RequireRole is the single authorization predicate: pass when the
// session holds one of the given roles, 403 otherwise.
func RequireRole(roles ...users_enums.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := GetSessionFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			ctx.Abort()
			return
		}

		if !session.HasAnyRole(roles...) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Insufficient permissions."})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// RequirePageRole guards browser-rendered pages: unauthenticated
// visitors are sent to the login page instead of receiving a JSON
// denial.
func RequirePageRole(authService *users_services.AuthService, roles ...users_enums.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := sessionToken(ctx)
		if token == "" {
			ctx.Redirect(http.StatusFound, "/login.html")
			ctx.Abort()
			return
		}

		session, err := authService.SessionFromToken(token)
		if err != nil {
			ctx.Redirect(http.StatusFound, "/login.html")
			ctx.Abort()
			return
		}

		if !session.HasAnyRole(roles...) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Insufficient permissions."})
			ctx.Abort()
			return
		}

		ctx.Set("session", session)
		ctx.Next()
	}
}

// GetSessionFromContext helper function to extract the session from gin context
func GetSessionFromContext(ctx *gin.Context) (*users_models.Session, bool) {
	sessionInterface, exists := ctx.Get("session")
	if !exists {
		return nil, false
	}

	session, ok := sessionInterface.(*users_models.Session)

	return session, ok
}

func sessionToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return header
}
