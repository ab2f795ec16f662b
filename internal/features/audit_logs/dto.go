package audit_logs

type GetAuditLogsRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
	// BeforeDate accepts RFC3339, date-only, and unix timestamps.
	BeforeDate string `form:"beforeDate"`
}

type GetAuditLogsResponse struct {
	AuditLogs []*AuditLog `json:"auditLogs"`
	Total     int64       `json:"total"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}
