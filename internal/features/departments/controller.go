package departments

import (
	"net/http"
	"strconv"

	users_middleware "allocboard/internal/features/users/middleware"
	"allocboard/internal/storage"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	departmentRepository *DepartmentRepository
}

func NewDepartmentController(departmentRepository *DepartmentRepository) *DepartmentController {
	return &DepartmentController{departmentRepository: departmentRepository}
}

func (c *DepartmentController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/departments",
		users_middleware.RequireRole(users_middleware.AnyAuthenticated...), c.GetDepartments)
	router.POST("/departments",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.CreateDepartment)
	router.PUT("/departments/:id",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.RenameDepartment)
	router.DELETE("/departments/:id",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.DeleteDepartment)
}

type saveDepartmentRequestDTO struct {
	Name string `json:"name"`
}

func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var request saveDepartmentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil || request.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Department name is required"})
		return
	}

	department := &Department{Name: request.Name}

	if err := c.departmentRepository.CreateDepartment(department); err != nil {
		if storage.IsUniqueViolation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Department name already exists"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": department.ID, "success": true})
}

func (c *DepartmentController) GetDepartments(ctx *gin.Context) {
	records, err := c.departmentRepository.GetDepartments()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *DepartmentController) RenameDepartment(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department id"})
		return
	}

	var request saveDepartmentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil || request.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Department name is required"})
		return
	}

	updated, err := c.departmentRepository.RenameDepartment(departmentID, request.Name)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Department name already exists"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if updated == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department id"})
		return
	}

	deleted, err := c.departmentRepository.DeleteDepartment(departmentID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
