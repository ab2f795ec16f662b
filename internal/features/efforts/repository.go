package efforts

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EffortRepository struct {
	db *gorm.DB
}

func NewEffortRepository(db *gorm.DB) *EffortRepository {
	return &EffortRepository{db: db}
}

// SaveEffort upserts: a conflicting (employee, project, week) key
// overwrites effort and days. That is the merge policy, not an error.
func (r *EffortRepository) SaveEffort(effort *Effort) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_id"},
			{Name: "project_id"},
			{Name: "week"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"effort": effort.Effort,
			"days":   effort.Days,
		}),
	}).Create(effort).Error
}

func (r *EffortRepository) GetEfforts() ([]*Effort, error) {
	var records = make([]*Effort, 0)

	err := r.db.Find(&records).Error

	return records, err
}

func (r *EffortRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&Effort{})

	return result.RowsAffected, result.Error
}

// DeleteByEmployeesAndWeeks removes every effort row matching both
// filter sets. The sets are bound as parameters, never interpolated.
func (r *EffortRepository) DeleteByEmployeesAndWeeks(employeeIDs []int64, weeks []int) (int64, error) {
	result := r.db.
		Where("employee_id IN ? AND week IN ?", employeeIDs, weeks).
		Delete(&Effort{})

	return result.RowsAffected, result.Error
}
