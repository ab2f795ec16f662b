package users_models

import (
	"time"

	users_enums "allocboard/internal/features/users/enums"
)

type UserRole struct {
	ID        int64            `json:"id"        gorm:"column:id;primaryKey;autoIncrement"`
	Email     string           `json:"email"     gorm:"column:email;uniqueIndex;not null"`
	Role      users_enums.Role `json:"role"      gorm:"column:role;not null;default:viewer"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time        `json:"updatedAt" gorm:"column:updated_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
