package users_testing

import (
	"fmt"

	users_enums "allocboard/internal/features/users/enums"
	users_middleware "allocboard/internal/features/users/middleware"
	users_repositories "allocboard/internal/features/users/repositories"
	users_services "allocboard/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TestSessionSecret = "test-session-secret"

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func BuildTestAuthService(db *gorm.DB) *users_services.AuthService {
	roleRepository := users_repositories.NewRoleRepository(db)

	return users_services.NewAuthService(
		roleRepository,
		"test-client-id",
		"test-client-secret",
		"http://localhost:5000/auth/google/callback",
		TestSessionSecret,
	)
}

// CreateTestRouter wires the given controllers behind the real auth
// middleware under /api, the same shape the server mounts.
func CreateTestRouter(
	authService *users_services.AuthService,
	controllers ...ControllerInterface,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.Use(users_middleware.AuthMiddleware(authService))

	for _, controller := range controllers {
		controller.RegisterRoutes(api)
	}

	return router
}

// CreateTestSessionToken seeds a role row for a fresh email and returns
// a signed session token for it.
func CreateTestSessionToken(
	db *gorm.DB,
	authService *users_services.AuthService,
	role users_enums.Role,
) (string, string) {
	email := fmt.Sprintf("%s-%s@test.com", role, uuid.New().String()[:8])

	roleRepository := users_repositories.NewRoleRepository(db)
	if _, err := roleRepository.UpsertRole(email, role); err != nil {
		panic(err)
	}

	session, err := authService.ResolveSessionForEmail(email, "Test User")
	if err != nil {
		panic(err)
	}

	token, err := authService.GenerateSessionToken(session)
	if err != nil {
		panic(err)
	}

	return email, token
}
