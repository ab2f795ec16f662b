package advisor

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var ErrNotReadOnly = errors.New("only read-only queries are allowed")

var forbiddenKeyword = regexp.MustCompile(
	`(?i)\b(insert|update|delete|drop|alter|create|truncate|grant|revoke|copy|vacuum)\b`,
)

// QueryRepository executes the diagnostic SQL passthrough. It is
// deliberately restricted to single read-only statements.
type QueryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

func (r *QueryRepository) RunReadOnlyQuery(query string) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(query), ";"))
	if trimmed == "" {
		return nil, ErrNotReadOnly
	}

	if strings.Contains(trimmed, ";") {
		return nil, ErrNotReadOnly
	}

	firstWord := strings.ToLower(strings.Fields(trimmed)[0])
	if firstWord != "select" && firstWord != "with" {
		return nil, ErrNotReadOnly
	}

	if forbiddenKeyword.MatchString(trimmed) {
		return nil, ErrNotReadOnly
	}

	var rows = make([]map[string]any, 0)

	if err := r.db.Raw(trimmed).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
