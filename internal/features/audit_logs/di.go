package audit_logs

import (
	"log/slog"

	"gorm.io/gorm"
)

func BuildFeature(db *gorm.DB, logger *slog.Logger) (*AuditLogService, *AuditLogController) {
	auditLogService := NewAuditLogService(NewAuditLogRepository(db), logger)
	auditLogController := NewAuditLogController(auditLogService)

	return auditLogService, auditLogController
}
