package efforts

// Effort is one employee's fractional weekly allocation on one project.
// The (employee, project, week) triple is unique; writing an existing
// triple overwrites effort and days.
type Effort struct {
	ID         int64   `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64   `json:"employeeId" gorm:"column:employee_id;uniqueIndex:idx_effort_key"`
	ProjectID  int64   `json:"projectId"  gorm:"column:project_id;uniqueIndex:idx_effort_key"`
	Week       int     `json:"week"       gorm:"column:week;uniqueIndex:idx_effort_key"`
	Effort     float64 `json:"effort"     gorm:"column:effort"`
	Days       int     `json:"days"       gorm:"column:days"`
}

func (Effort) TableName() string {
	return "efforts"
}
