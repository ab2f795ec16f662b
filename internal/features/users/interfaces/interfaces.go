package users_interfaces

// AuditLogWriter records administrative actions without creating an
// import cycle between the users and audit_logs features.
type AuditLogWriter interface {
	WriteAuditLog(message string, actorEmail string)
}
