package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id;primaryKey"`
	ActorEmail string    `json:"actorEmail" gorm:"column:actor_email"`
	Message    string    `json:"message"    gorm:"column:message"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
