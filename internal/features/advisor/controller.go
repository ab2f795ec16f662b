package advisor

import (
	"errors"
	"net/http"

	users_middleware "allocboard/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type AdvisorController struct {
	advisorService  *AdvisorService
	queryRepository *QueryRepository
	analysisLimiter *rate.Limiter
}

func NewAdvisorController(
	advisorService *AdvisorService,
	queryRepository *QueryRepository,
	analysisLimiter *rate.Limiter,
) *AdvisorController {
	return &AdvisorController{
		advisorService:  advisorService,
		queryRepository: queryRepository,
		analysisLimiter: analysisLimiter,
	}
}

func (c *AdvisorController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workload-analysis",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.WorkloadAnalysis)
	router.POST("/query",
		users_middleware.RequireRole(users_middleware.UserOrAdmin...), c.RunQuery)
}

type analysisRequestDTO struct {
	Query string `json:"query"`
}

func (c *AdvisorController) WorkloadAnalysis(ctx *gin.Context) {
	// The remote completion call is the only externally latent
	// operation in the system; keep its request rate bounded.
	if !c.analysisLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		return
	}

	var request analysisRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	analysis := c.advisorService.Analyze(ctx.Request.Context(), request.Query)

	ctx.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

func (c *AdvisorController) RunQuery(ctx *gin.Context) {
	var request analysisRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rows, err := c.queryRepository.RunReadOnlyQuery(request.Query)
	if err != nil {
		if errors.Is(err, ErrNotReadOnly) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only read-only queries are allowed"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}
