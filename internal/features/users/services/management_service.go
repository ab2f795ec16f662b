package users_services

import (
	"errors"
	"fmt"
	"strings"

	users_enums "allocboard/internal/features/users/enums"
	users_interfaces "allocboard/internal/features/users/interfaces"
	users_models "allocboard/internal/features/users/models"
	users_repositories "allocboard/internal/features/users/repositories"
)

var (
	ErrInvalidRole  = errors.New("valid email and role are required")
	ErrUserNotFound = errors.New("user not found")
)

type ManagementService struct {
	roleRepository *users_repositories.RoleRepository
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewManagementService(
	roleRepository *users_repositories.RoleRepository,
	auditLogWriter users_interfaces.AuditLogWriter,
) *ManagementService {
	return &ManagementService{
		roleRepository: roleRepository,
		auditLogWriter: auditLogWriter,
	}
}

func (s *ManagementService) ListUsers() ([]*users_models.UserRole, error) {
	return s.roleRepository.ListRoles()
}

func (s *ManagementService) UpsertUser(
	email string,
	role users_enums.Role,
	actor *users_models.Session,
) (*users_models.UserRole, error) {
	email = strings.TrimSpace(email)
	if email == "" || !role.IsValid() {
		return nil, ErrInvalidRole
	}

	userRole, err := s.roleRepository.UpsertRole(email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to save user role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Granted role %q to %s", role, email),
		actor.Email,
	)

	return userRole, nil
}

func (s *ManagementService) UpdateUserRole(
	email string,
	role users_enums.Role,
	actor *users_models.Session,
) (*users_models.UserRole, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	userRole, err := s.roleRepository.UpdateRole(email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	if userRole == nil {
		return nil, ErrUserNotFound
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Changed role of %s to %q", email, role),
		actor.Email,
	)

	return userRole, nil
}

func (s *ManagementService) DeleteUser(email string, actor *users_models.Session) error {
	deleted, err := s.roleRepository.DeleteRole(email)
	if err != nil {
		return fmt.Errorf("failed to delete user role: %w", err)
	}

	if deleted == 0 {
		return ErrUserNotFound
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Revoked access for %s", email),
		actor.Email,
	)

	return nil
}

// SeedInitialAdmin makes sure the configured bootstrap email holds the
// admin role, so a fresh deployment is reachable at all.
func (s *ManagementService) SeedInitialAdmin(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	if _, err := s.roleRepository.UpsertRole(email, users_enums.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed initial admin: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Seeded initial admin role for %s", email),
		"system",
	)

	return nil
}
