package projects

const DefaultProjectType = "project"

type Project struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name"`
	Type string `json:"type" gorm:"column:type;default:project"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectAssignment links an employee to a project. The pair is unique;
// creating an existing pair is a no-op.
type ProjectAssignment struct {
	ID         int64 `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64 `json:"employeeId" gorm:"column:employee_id;uniqueIndex:idx_assignment_pair"`
	ProjectID  int64 `json:"projectId"  gorm:"column:project_id;uniqueIndex:idx_assignment_pair"`
}

func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
