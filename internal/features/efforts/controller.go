package efforts

import (
	"net/http"

	users_middleware "allocboard/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type EffortController struct {
	effortRepository *EffortRepository
}

func NewEffortController(effortRepository *EffortRepository) *EffortController {
	return &EffortController{effortRepository: effortRepository}
}

func (c *EffortController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/efforts",
		users_middleware.RequireRole(users_middleware.AnyAuthenticated...), c.GetEfforts)
	router.POST("/efforts",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.SaveEffort)
	router.DELETE("/efforts",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.DeleteAllEfforts)
	router.DELETE("/efforts/clear-view",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.ClearView)
}

func (c *EffortController) SaveEffort(ctx *gin.Context) {
	var request SaveEffortRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	record := &Effort{
		EmployeeID: request.EmployeeID,
		ProjectID:  request.ProjectID,
		Week:       request.Week,
		Effort:     request.Effort,
		Days:       request.Days,
	}

	if err := c.effortRepository.SaveEffort(record); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *EffortController) GetEfforts(ctx *gin.Context) {
	records, err := c.effortRepository.GetEfforts()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *EffortController) DeleteAllEfforts(ctx *gin.Context) {
	deleted, err := c.effortRepository.DeleteAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

func (c *EffortController) ClearView(ctx *gin.Context) {
	var request ClearViewRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing employeeIds or weekValues"})
		return
	}

	if len(request.EmployeeIDs) == 0 || len(request.WeekValues) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing employeeIds or weekValues"})
		return
	}

	deleted, err := c.effortRepository.DeleteByEmployeesAndWeeks(request.EmployeeIDs, request.WeekValues)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
