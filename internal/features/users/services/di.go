package users_services

import (
	"allocboard/internal/config"
	users_interfaces "allocboard/internal/features/users/interfaces"
	users_repositories "allocboard/internal/features/users/repositories"

	"gorm.io/gorm"
)

func BuildServices(
	db *gorm.DB,
	cfg config.EnvVariables,
	auditLogWriter users_interfaces.AuditLogWriter,
) (*AuthService, *ManagementService) {
	roleRepository := users_repositories.NewRoleRepository(db)

	authService := NewAuthService(
		roleRepository,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.OAuthCallbackURL,
		cfg.SessionSecret,
	)
	managementService := NewManagementService(roleRepository, auditLogWriter)

	return authService, managementService
}
