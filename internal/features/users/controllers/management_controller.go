package users_controllers

import (
	"errors"
	"net/http"

	users_dto "allocboard/internal/features/users/dto"
	users_middleware "allocboard/internal/features/users/middleware"
	users_services "allocboard/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type ManagementController struct {
	managementService *users_services.ManagementService
}

func NewManagementController(managementService *users_services.ManagementService) *ManagementController {
	return &ManagementController{managementService: managementService}
}

// RegisterRoutes mounts user-role management. The routes are admin-only
// on top of the shared auth middleware.
func (c *ManagementController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(users_middleware.RequireRole(users_middleware.AdminOnly...))

	admin.GET("/users", c.ListUsers)
	admin.POST("/users", c.UpsertUser)
	admin.PUT("/users/:email", c.UpdateUserRole)
	admin.DELETE("/users/:email", c.DeleteUser)
}

func (c *ManagementController) ListUsers(ctx *gin.Context) {
	users, err := c.managementService.ListUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *ManagementController) UpsertUser(ctx *gin.Context) {
	session, _ := users_middleware.GetSessionFromContext(ctx)

	var request users_dto.UpsertUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid email and role are required"})
		return
	}

	user, err := c.managementService.UpsertUser(request.Email, request.Role, session)
	if err != nil {
		if errors.Is(err, users_services.ErrInvalidRole) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid email and role are required"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (c *ManagementController) UpdateUserRole(ctx *gin.Context) {
	session, _ := users_middleware.GetSessionFromContext(ctx)
	email := ctx.Param("email")

	var request users_dto.ChangeUserRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid role is required"})
		return
	}

	user, err := c.managementService.UpdateUserRole(email, request.Role, session)
	if err != nil {
		switch {
		case errors.Is(err, users_services.ErrInvalidRole):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid role is required"})
		case errors.Is(err, users_services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (c *ManagementController) DeleteUser(ctx *gin.Context) {
	session, _ := users_middleware.GetSessionFromContext(ctx)
	email := ctx.Param("email")

	if err := c.managementService.DeleteUser(email, session); err != nil {
		if errors.Is(err, users_services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": 1})
}
