package users_dto

import (
	users_enums "allocboard/internal/features/users/enums"
)

type UpsertUserRequestDTO struct {
	Email string           `json:"email" binding:"required"`
	Role  users_enums.Role `json:"role"  binding:"required"`
}

type ChangeUserRoleRequestDTO struct {
	Role users_enums.Role `json:"role" binding:"required"`
}
