package audit_logs

import (
	"errors"
	"net/http"

	users_middleware "allocboard/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func NewAuditLogController(auditLogService *AuditLogService) *AuditLogController {
	return &AuditLogController{auditLogService: auditLogService}
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/audit-logs",
		users_middleware.RequireRole(users_middleware.AdminOnly...), c.GetAuditLogs)
}

func (c *AuditLogController) GetAuditLogs(ctx *gin.Context) {
	var request GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	response, err := c.auditLogService.GetAuditLogs(&request)
	if err != nil {
		if errors.Is(err, ErrInvalidBeforeDate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid beforeDate value"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
