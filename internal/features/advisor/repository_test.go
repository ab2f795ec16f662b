package advisor

import (
	"testing"

	"allocboard/internal/features/efforts"
	test_utils "allocboard/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RunReadOnlyQuery_WhenSelect_ReturnsRows(t *testing.T) {
	db := test_utils.OpenTestDatabase(t, &efforts.Effort{})
	require.NoError(t, db.Create(&efforts.Effort{EmployeeID: 1, ProjectID: 1, Week: 1, Effort: 0.5, Days: 2}).Error)

	repository := NewQueryRepository(db)

	rows, err := repository.RunReadOnlyQuery("SELECT employee_id, effort FROM efforts;")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0]["employee_id"])
}

func Test_RunReadOnlyQuery_WhenWithClause_Allowed(t *testing.T) {
	db := test_utils.OpenTestDatabase(t, &efforts.Effort{})

	repository := NewQueryRepository(db)

	rows, err := repository.RunReadOnlyQuery("WITH totals AS (SELECT week FROM efforts) SELECT * FROM totals")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func Test_RunReadOnlyQuery_WhenMutatingStatement_Rejected(t *testing.T) {
	db := test_utils.OpenTestDatabase(t, &efforts.Effort{})
	require.NoError(t, db.Create(&efforts.Effort{EmployeeID: 1, ProjectID: 1, Week: 1, Effort: 0.5, Days: 2}).Error)

	repository := NewQueryRepository(db)

	for _, query := range []string{
		"DELETE FROM efforts",
		"update efforts set days = 0",
		"DROP TABLE efforts",
		"SELECT 1; DELETE FROM efforts",
		"SELECT * FROM efforts WHERE week IN (SELECT week FROM efforts); TRUNCATE efforts",
		"",
		"   ;  ",
	} {
		_, err := repository.RunReadOnlyQuery(query)
		assert.ErrorIs(t, err, ErrNotReadOnly, "query: %q", query)
	}

	var count int64
	require.NoError(t, db.Model(&efforts.Effort{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_RunReadOnlyQuery_WhenForbiddenKeywordEmbedded_Rejected(t *testing.T) {
	db := test_utils.OpenTestDatabase(t, &efforts.Effort{})

	repository := NewQueryRepository(db)

	_, err := repository.RunReadOnlyQuery("SELECT * FROM efforts WHERE 1 IN (DELETE FROM efforts)")

	assert.ErrorIs(t, err, ErrNotReadOnly)
}
