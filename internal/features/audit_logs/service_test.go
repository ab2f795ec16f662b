package audit_logs

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"
	users_testing "allocboard/internal/features/users/testing"
	"allocboard/internal/util/logger"
	test_utils "allocboard/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buildTestAuditLogService(t *testing.T) (*gorm.DB, *AuditLogService) {
	db := test_utils.OpenTestDatabase(t,
		&users_models.UserRole{},
		&AuditLog{},
	)

	return db, NewAuditLogService(NewAuditLogRepository(db), logger.GetLogger())
}

func Test_WriteAuditLog_RecordPersistedWithActor(t *testing.T) {
	db, service := buildTestAuditLogService(t)

	service.WriteAuditLog("Changed role of bob@example.com to viewer", "admin@example.com")

	var records []AuditLog
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "admin@example.com", records[0].ActorEmail)
	assert.Contains(t, records[0].Message, "bob@example.com")
	assert.NotZero(t, records[0].ID)
}

func Test_GetAuditLogs_ReturnsNewestFirstWithTotal(t *testing.T) {
	db, service := buildTestAuditLogService(t)

	repository := NewAuditLogRepository(db)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repository.Create(&AuditLog{
			ActorEmail: "admin@example.com",
			Message:    fmt.Sprintf("event %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	response, err := service.GetAuditLogs(&GetAuditLogsRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(3), response.Total)
	assert.Equal(t, 100, response.Limit)
	require.Len(t, response.AuditLogs, 3)
	assert.Equal(t, "event 2", response.AuditLogs[0].Message)
	assert.Equal(t, "event 0", response.AuditLogs[2].Message)
}

func Test_GetAuditLogs_WhenLimitOutOfRange_FallsBackToDefault(t *testing.T) {
	_, service := buildTestAuditLogService(t)

	for _, limit := range []int{-5, 0, 1001} {
		response, err := service.GetAuditLogs(&GetAuditLogsRequest{Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 100, response.Limit, "limit: %d", limit)
	}
}

func Test_GetAuditLogs_WhenBeforeDateSet_FiltersNewerRecords(t *testing.T) {
	db, service := buildTestAuditLogService(t)

	repository := NewAuditLogRepository(db)
	cutoff := time.Now().UTC()
	require.NoError(t, repository.Create(&AuditLog{Message: "old", CreatedAt: cutoff.Add(-time.Hour)}))
	require.NoError(t, repository.Create(&AuditLog{Message: "new", CreatedAt: cutoff.Add(time.Hour)}))

	response, err := service.GetAuditLogs(&GetAuditLogsRequest{BeforeDate: cutoff.Format(time.RFC3339)})

	require.NoError(t, err)
	assert.Equal(t, int64(1), response.Total)
	require.Len(t, response.AuditLogs, 1)
	assert.Equal(t, "old", response.AuditLogs[0].Message)
}

func Test_GetAuditLogs_WhenBeforeDateMalformed_ReturnsError(t *testing.T) {
	_, service := buildTestAuditLogService(t)

	_, err := service.GetAuditLogs(&GetAuditLogsRequest{BeforeDate: "yesterday"})

	assert.ErrorIs(t, err, ErrInvalidBeforeDate)
}

func Test_GetAuditLogsEndpoint_WhenNonAdmin_ReturnsForbidden(t *testing.T) {
	db := test_utils.OpenTestDatabase(t,
		&users_models.UserRole{},
		&AuditLog{},
	)

	authService := users_testing.BuildTestAuthService(db)
	controller := NewAuditLogController(NewAuditLogService(NewAuditLogRepository(db), logger.GetLogger()))
	router := users_testing.CreateTestRouter(authService, controller)

	_, userToken := users_testing.CreateTestSessionToken(db, authService, users_enums.RoleUser)

	w := test_utils.MakeAPIRequest(router, http.MethodGet, "/api/admin/audit-logs",
		"Bearer "+userToken, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_GetAuditLogsEndpoint_WhenAdmin_ReturnsRecords(t *testing.T) {
	db := test_utils.OpenTestDatabase(t,
		&users_models.UserRole{},
		&AuditLog{},
	)

	authService := users_testing.BuildTestAuthService(db)
	service := NewAuditLogService(NewAuditLogRepository(db), logger.GetLogger())
	router := users_testing.CreateTestRouter(authService, NewAuditLogController(service))

	service.WriteAuditLog("Added user carol@example.com with role user", "admin@example.com")

	_, adminToken := users_testing.CreateTestSessionToken(db, authService, users_enums.RoleAdmin)

	var response GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/admin/audit-logs",
		"Bearer "+adminToken, http.StatusOK, &response)

	assert.Equal(t, int64(1), response.Total)
	require.Len(t, response.AuditLogs, 1)
	assert.Equal(t, "admin@example.com", response.AuditLogs[0].ActorEmail)
}
