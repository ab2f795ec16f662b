package users_controllers

import (
	"log/slog"

	users_services "allocboard/internal/features/users/services"
)

func BuildControllers(
	authService *users_services.AuthService,
	managementService *users_services.ManagementService,
	logger *slog.Logger,
	secureCookies bool,
) (*AuthController, *ManagementController) {
	authController := NewAuthController(authService, logger, secureCookies)
	managementController := NewManagementController(managementService)

	return authController, managementController
}
