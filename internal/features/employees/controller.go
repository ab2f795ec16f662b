package employees

import (
	"log/slog"
	"net/http"
	"strconv"

	users_middleware "allocboard/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	employeeRepository *EmployeeRepository
	logger             *slog.Logger
}

func NewEmployeeController(employeeRepository *EmployeeRepository, logger *slog.Logger) *EmployeeController {
	return &EmployeeController{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (c *EmployeeController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/employees",
		users_middleware.RequireRole(users_middleware.AnyAuthenticated...), c.GetEmployees)
	router.POST("/employees",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.CreateEmployee)
	router.PUT("/employees/:id",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.UpdateEmployee)
	router.DELETE("/employees/:id",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.DeleteEmployee)
}

func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var request CreateEmployeeRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if request.Name == "" || request.Department == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name and department are required"})
		return
	}

	employee := &Employee{
		Name:           request.Name,
		Email:          request.Email,
		Department:     request.Department,
		EmployeeNumber: request.EmployeeNumber,
	}

	if err := c.employeeRepository.CreateEmployee(employee); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.logger.Info("employee created", "id", employee.ID)
	ctx.JSON(http.StatusOK, gin.H{"id": employee.ID, "success": true})
}

func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	records, err := c.employeeRepository.GetEmployees()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var request UpdateEmployeeRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	fields := map[string]any{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Email != nil {
		fields["email"] = *request.Email
	}
	if request.Department != nil {
		fields["department"] = *request.Department
	}
	if request.EmployeeNumber != nil {
		fields["employee_number"] = *request.EmployeeNumber
	}

	if len(fields) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	updated, err := c.employeeRepository.UpdateEmployeeFields(employeeID, fields)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if updated == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	deleted, err := c.employeeRepository.DeleteEmployeeCascade(employeeID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
