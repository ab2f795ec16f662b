package users_controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"

	users_enums "allocboard/internal/features/users/enums"
	users_middleware "allocboard/internal/features/users/middleware"
	users_services "allocboard/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const (
	stateCookieName     = "oauth_state"
	stateCookieMaxAge   = 600
	sessionCookieMaxAge = 7 * 24 * 3600
)

type AuthController struct {
	authService   *users_services.AuthService
	logger        *slog.Logger
	secureCookies bool
}

func NewAuthController(
	authService *users_services.AuthService,
	logger *slog.Logger,
	secureCookies bool,
) *AuthController {
	return &AuthController{
		authService:   authService,
		logger:        logger,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the public login flow.
func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/auth/google", c.BeginLogin)
	router.GET("/auth/google/callback", c.FinishLogin)
	router.GET("/logout", c.Logout)
}

// RegisterProtectedRoutes mounts the session endpoints behind the auth
// middleware.
func (c *AuthController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/user", c.GetCurrentUser)
	router.GET("/roles", c.GetRoles)
}

func (c *AuthController) BeginLogin(ctx *gin.Context) {
	state, err := randomState()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start login"})
		return
	}

	ctx.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", c.secureCookies, true)
	ctx.Redirect(http.StatusFound, c.authService.BuildAuthURL(state))
}

func (c *AuthController) FinishLogin(ctx *gin.Context) {
	state, err := ctx.Cookie(stateCookieName)
	if err != nil || state == "" || ctx.Query("state") != state {
		c.logger.Warn("oauth callback with mismatched state")
		ctx.Redirect(http.StatusFound, "/login.html?error=access_denied")
		return
	}

	ctx.SetCookie(stateCookieName, "", -1, "/", "", c.secureCookies, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.Redirect(http.StatusFound, "/login.html?error=access_denied")
		return
	}

	session, err := c.authService.HandleCallback(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, users_services.ErrAccessDenied) {
			c.logger.Info("login rejected, no role assigned")
		} else {
			c.logger.Error("oauth callback failed", "error", err)
		}

		ctx.Redirect(http.StatusFound, "/login.html?error=access_denied")
		return
	}

	token, err := c.authService.GenerateSessionToken(session)
	if err != nil {
		c.logger.Error("failed to issue session token", "error", err)
		ctx.Redirect(http.StatusFound, "/login.html?error=access_denied")
		return
	}

	ctx.SetCookie(users_middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", c.secureCookies, true)
	ctx.Redirect(http.StatusFound, "/index.html")
}

func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(users_middleware.SessionCookieName, "", -1, "/", "", c.secureCookies, true)
	ctx.Redirect(http.StatusFound, "/login.html")
}

func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	session, ok := users_middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx.JSON(http.StatusOK, session)
}

func (c *AuthController) GetRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, users_enums.AllRoles())
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
