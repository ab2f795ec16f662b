package projects

import (
	"allocboard/internal/features/efforts"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProject(project *Project) error {
	if project.Type == "" {
		project.Type = DefaultProjectType
	}

	return r.db.Create(project).Error
}

func (r *ProjectRepository) GetProjects() ([]*Project, error) {
	var records = make([]*Project, 0)

	err := r.db.Find(&records).Error

	return records, err
}

func (r *ProjectRepository) UpdateProject(projectID int64, name, projectType string) (int64, error) {
	if projectType == "" {
		projectType = DefaultProjectType
	}

	result := r.db.Model(&Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"name": name,
			"type": projectType,
		})

	return result.RowsAffected, result.Error
}

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateAssignment is idempotent: inserting an existing pair does
// nothing and reports no error.
func (r *AssignmentRepository) CreateAssignment(employeeID, projectID int64) error {
	assignment := &ProjectAssignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_id"},
			{Name: "project_id"},
		},
		DoNothing: true,
	}).Create(assignment).Error
}

func (r *AssignmentRepository) GetAssignments() ([]*ProjectAssignment, error) {
	var records = make([]*ProjectAssignment, 0)

	err := r.db.Find(&records).Error

	return records, err
}

// DeleteAssignmentWithEfforts removes the pair's effort rows and its
// assignment row in one transaction; any failure rolls back both.
func (r *AssignmentRepository) DeleteAssignmentWithEfforts(employeeID, projectID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ? AND project_id = ?", employeeID, projectID).
			Delete(&efforts.Effort{}).Error; err != nil {
			return err
		}

		return tx.
			Where("employee_id = ? AND project_id = ?", employeeID, projectID).
			Delete(&ProjectAssignment{}).Error
	})
}
