package projects

import (
	"net/http"
	"strconv"

	users_middleware "allocboard/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectRepository    *ProjectRepository
	assignmentRepository *AssignmentRepository
}

func NewProjectController(
	projectRepository *ProjectRepository,
	assignmentRepository *AssignmentRepository,
) *ProjectController {
	return &ProjectController{
		projectRepository:    projectRepository,
		assignmentRepository: assignmentRepository,
	}
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects",
		users_middleware.RequireRole(users_middleware.AnyAuthenticated...), c.GetProjects)
	router.POST("/projects",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.CreateProject)
	router.PUT("/projects/:id",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.UpdateProject)

	router.GET("/project-assignments",
		users_middleware.RequireRole(users_middleware.AnyAuthenticated...), c.GetAssignments)
	router.POST("/project-assignments",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.CreateAssignment)
	router.DELETE("/project-assignments",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.DeleteAssignment)
}

func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var request SaveProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project := &Project{
		Name: request.Name,
		Type: request.Type,
	}

	if err := c.projectRepository.CreateProject(project); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": project.ID})
}

func (c *ProjectController) GetProjects(ctx *gin.Context) {
	records, err := c.projectRepository.GetProjects()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var request SaveProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := c.projectRepository.UpdateProject(projectID, request.Name, request.Type)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (c *ProjectController) CreateAssignment(ctx *gin.Context) {
	var request AssignmentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.assignmentRepository.CreateAssignment(request.EmployeeID, request.ProjectID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *ProjectController) GetAssignments(ctx *gin.Context) {
	records, err := c.assignmentRepository.GetAssignments()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *ProjectController) DeleteAssignment(ctx *gin.Context) {
	var request AssignmentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.assignmentRepository.DeleteAssignmentWithEfforts(request.EmployeeID, request.ProjectID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
