package users_testing

import (
	users_repositories "allocboard/internal/features/users/repositories"
	users_services "allocboard/internal/features/users/services"

	"gorm.io/gorm"
)

type NoopAuditWriter struct{}

func (NoopAuditWriter) WriteAuditLog(message string, actorEmail string) {}

func BuildTestManagementService(db *gorm.DB) *users_services.ManagementService {
	return users_services.NewManagementService(
		users_repositories.NewRoleRepository(db),
		NoopAuditWriter{},
	)
}
