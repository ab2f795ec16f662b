package employees

import (
	"net/http"
	"strconv"
	"testing"

	"allocboard/internal/features/efforts"
	"allocboard/internal/features/projects"
	users_enums "allocboard/internal/features/users/enums"
	users_models "allocboard/internal/features/users/models"
	users_testing "allocboard/internal/features/users/testing"
	"allocboard/internal/util/logger"
	test_utils "allocboard/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createEmployeeTestRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	db := test_utils.OpenTestDatabase(t,
		&users_models.UserRole{},
		&Employee{},
		&projects.Project{},
		&projects.ProjectAssignment{},
		&efforts.Effort{},
	)

	authService := users_testing.BuildTestAuthService(db)
	employeeController := NewEmployeeController(NewEmployeeRepository(db), logger.GetLogger())

	router := users_testing.CreateTestRouter(authService, employeeController)

	return db, router
}

func int64String(value int64) string {
	return strconv.FormatInt(value, 10)
}

func userToken(t *testing.T, db *gorm.DB, role users_enums.Role) string {
	t.Helper()

	authService := users_testing.BuildTestAuthService(db)
	_, token := users_testing.CreateTestSessionToken(db, authService, role)

	return "Bearer " + token
}

func Test_CreateEmployee_WhenNameAndDepartmentPresent_EmployeeCreated(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	var response struct {
		ID      int64 `json:"id"`
		Success bool  `json:"success"`
	}
	test_utils.MakePostRequestAndUnmarshal(t, router, "/api/employees", token,
		CreateEmployeeRequestDTO{Name: "Ada", Department: "Engineering", EmployeeNumber: "E-100"},
		http.StatusOK, &response)

	assert.True(t, response.Success)
	assert.NotZero(t, response.ID)
}

func Test_CreateEmployee_WhenDepartmentMissing_ReturnsValidationError(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	w := test_utils.MakeAPIRequest(router, http.MethodPost, "/api/employees", token,
		CreateEmployeeRequestDTO{Name: "Ada"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and department are required")
}

func Test_UpdateEmployee_WhenPartialBody_OnlyProvidedFieldsChange(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	repository := NewEmployeeRepository(db)
	employee := &Employee{Name: "Ada", Department: "Engineering", EmployeeNumber: "E-100"}
	require.NoError(t, repository.CreateEmployee(employee))

	newName := "Ada Lovelace"
	test_utils.MakePutRequestAndUnmarshal(t, router,
		"/api/employees/"+int64String(employee.ID), token,
		UpdateEmployeeRequestDTO{Name: &newName},
		http.StatusOK, nil)

	var updated Employee
	require.NoError(t, db.First(&updated, employee.ID).Error)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "Engineering", updated.Department)
	assert.Equal(t, "E-100", updated.EmployeeNumber)
}

func Test_UpdateEmployee_WhenNoFields_ReturnsValidationError(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	w := test_utils.MakeAPIRequest(router, http.MethodPut, "/api/employees/1", token,
		UpdateEmployeeRequestDTO{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")
}

func Test_UpdateEmployee_WhenUnknownID_ReturnsNotFound(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	newName := "Ghost"
	w := test_utils.MakeAPIRequest(router, http.MethodPut, "/api/employees/4242", token,
		UpdateEmployeeRequestDTO{Name: &newName})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_DeleteEmployee_CascadesToEffortsAndAssignments(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	repository := NewEmployeeRepository(db)
	target := &Employee{Name: "Ada", Department: "Engineering"}
	bystander := &Employee{Name: "Grace", Department: "Engineering"}
	require.NoError(t, repository.CreateEmployee(target))
	require.NoError(t, repository.CreateEmployee(bystander))

	require.NoError(t, db.Create(&projects.Project{Name: "Search"}).Error)
	require.NoError(t, db.Create(&projects.ProjectAssignment{EmployeeID: target.ID, ProjectID: 1}).Error)
	require.NoError(t, db.Create(&projects.ProjectAssignment{EmployeeID: bystander.ID, ProjectID: 1}).Error)
	require.NoError(t, db.Create(&efforts.Effort{EmployeeID: target.ID, ProjectID: 1, Week: 1, Effort: 0.5, Days: 2}).Error)
	require.NoError(t, db.Create(&efforts.Effort{EmployeeID: bystander.ID, ProjectID: 1, Week: 1, Effort: 0.3, Days: 1}).Error)

	var response struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}
	test_utils.MakeDeleteRequestAndUnmarshal(t, router,
		"/api/employees/"+int64String(target.ID), token, nil, http.StatusOK, &response)

	assert.True(t, response.Success)
	assert.Equal(t, int64(1), response.Deleted)

	var effortCount, assignmentCount, employeeCount int64
	require.NoError(t, db.Model(&efforts.Effort{}).Where("employee_id = ?", target.ID).Count(&effortCount).Error)
	require.NoError(t, db.Model(&projects.ProjectAssignment{}).Where("employee_id = ?", target.ID).Count(&assignmentCount).Error)
	require.NoError(t, db.Model(&Employee{}).Where("id = ?", target.ID).Count(&employeeCount).Error)
	assert.Zero(t, effortCount)
	assert.Zero(t, assignmentCount)
	assert.Zero(t, employeeCount)

	// The other employee's rows must be untouched.
	require.NoError(t, db.Model(&efforts.Effort{}).Where("employee_id = ?", bystander.ID).Count(&effortCount).Error)
	require.NoError(t, db.Model(&projects.ProjectAssignment{}).Where("employee_id = ?", bystander.ID).Count(&assignmentCount).Error)
	assert.Equal(t, int64(1), effortCount)
	assert.Equal(t, int64(1), assignmentCount)
}

func Test_DeleteEmployee_WhenCascadeStepFails_NothingIsDeleted(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleUser)

	repository := NewEmployeeRepository(db)
	employee := &Employee{Name: "Ada", Department: "Engineering"}
	require.NoError(t, repository.CreateEmployee(employee))
	require.NoError(t, db.Create(&efforts.Effort{EmployeeID: employee.ID, ProjectID: 1, Week: 1, Effort: 0.5, Days: 2}).Error)

	// Fail the assignments step of the cascade.
	require.NoError(t, db.Migrator().DropTable(&projects.ProjectAssignment{}))

	w := test_utils.MakeAPIRequest(router, http.MethodDelete,
		"/api/employees/"+int64String(employee.ID), token, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var employeeCount, effortCount int64
	require.NoError(t, db.Model(&Employee{}).Where("id = ?", employee.ID).Count(&employeeCount).Error)
	require.NoError(t, db.Model(&efforts.Effort{}).Where("employee_id = ?", employee.ID).Count(&effortCount).Error)
	assert.Equal(t, int64(1), employeeCount)
	assert.Equal(t, int64(1), effortCount)
}

func Test_GetEmployees_WhenUnauthenticated_ReturnsUnauthorized(t *testing.T) {
	_, router := createEmployeeTestRouter(t)

	w := test_utils.MakeAPIRequest(router, http.MethodGet, "/api/employees", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_CreateEmployee_WhenViewer_ReturnsForbidden(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	token := userToken(t, db, users_enums.RoleViewer)

	w := test_utils.MakeAPIRequest(router, http.MethodPost, "/api/employees", token,
		CreateEmployeeRequestDTO{Name: "Ada", Department: "Engineering"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_GetEmployees_WhenViewer_ReturnsRows(t *testing.T) {
	db, router := createEmployeeTestRouter(t)
	require.NoError(t, NewEmployeeRepository(db).CreateEmployee(
		&Employee{Name: "Ada", Department: "Engineering"}))

	token := userToken(t, db, users_enums.RoleViewer)

	var records []Employee
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/employees", token, http.StatusOK, &records)

	require.Len(t, records, 1)
	assert.Equal(t, "Ada", records[0].Name)
}
