package audit_logs

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	time_parser "allocboard/internal/util/time"
)

var ErrInvalidBeforeDate = errors.New("invalid beforeDate value")

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

func NewAuditLogService(auditLogRepository *AuditLogRepository, logger *slog.Logger) *AuditLogService {
	return &AuditLogService{
		auditLogRepository: auditLogRepository,
		logger:             logger,
	}
}

// WriteAuditLog is best-effort: a failed write is logged, never
// surfaced to the action it records.
func (s *AuditLogService) WriteAuditLog(message string, actorEmail string) {
	auditLog := &AuditLog{
		ActorEmail: actorEmail,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err)
	}
}

func (s *AuditLogService) GetAuditLogs(request *GetAuditLogsRequest) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	beforeDate, err := time_parser.ParseQueryTimestamp(request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBeforeDate, err)
	}

	auditLogs, err := s.auditLogRepository.GetGlobal(limit, offset, beforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.auditLogRepository.CountGlobal(beforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
