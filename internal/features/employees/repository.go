package employees

import (
	"allocboard/internal/features/efforts"
	"allocboard/internal/features/projects"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) CreateEmployee(employee *Employee) error {
	return r.db.Create(employee).Error
}

func (r *EmployeeRepository) GetEmployees() ([]*Employee, error) {
	var records = make([]*Employee, 0)

	err := r.db.Find(&records).Error

	return records, err
}

func (r *EmployeeRepository) UpdateEmployeeFields(employeeID int64, fields map[string]any) (int64, error) {
	result := r.db.Model(&Employee{}).
		Where("id = ?", employeeID).
		Updates(fields)

	return result.RowsAffected, result.Error
}

// DeleteEmployeeCascade removes the employee's effort rows, assignment
// rows and finally the employee itself in one transaction. A failure
// at any step leaves all three tables untouched.
func (r *EmployeeRepository) DeleteEmployeeCascade(employeeID int64) (int64, error) {
	var deleted int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", employeeID).
			Delete(&efforts.Effort{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("employee_id = ?", employeeID).
			Delete(&projects.ProjectAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", employeeID).Delete(&Employee{})
		if result.Error != nil {
			return result.Error
		}

		deleted = result.RowsAffected

		return nil
	})

	return deleted, err
}
