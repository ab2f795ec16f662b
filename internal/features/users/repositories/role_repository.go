package users_repositories

import (
	"time"

	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetRoleByEmail returns (nil, nil) when no row exists for the email.
// A storage failure is returned as an error so callers can keep
// "not found" and "database error" apart.
func (r *RoleRepository) GetRoleByEmail(email string) (*users_models.UserRole, error) {
	var userRole users_models.UserRole

	if err := r.db.Where("email = ?", email).First(&userRole).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &userRole, nil
}

func (r *RoleRepository) ListRoles() ([]*users_models.UserRole, error) {
	var userRoles = make([]*users_models.UserRole, 0)

	err := r.db.Order("email").Find(&userRoles).Error

	return userRoles, err
}

// UpsertRole inserts a role row or, when the email already exists,
// overwrites its role and bumps updated_at.
func (r *RoleRepository) UpsertRole(email string, role users_enums.Role) (*users_models.UserRole, error) {
	now := time.Now().UTC()

	userRole := &users_models.UserRole{
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]any{"role": role, "updated_at": now}),
	}).Create(userRole).Error
	if err != nil {
		return nil, err
	}

	return r.GetRoleByEmail(email)
}

func (r *RoleRepository) UpdateRole(email string, role users_enums.Role) (*users_models.UserRole, error) {
	result := r.db.Model(&users_models.UserRole{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"role":       role,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetRoleByEmail(email)
}

func (r *RoleRepository) DeleteRole(email string) (int64, error) {
	result := r.db.Where("email = ?", email).Delete(&users_models.UserRole{})

	return result.RowsAffected, result.Error
}
