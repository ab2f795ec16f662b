package departments

import (
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) CreateDepartment(department *Department) error {
	return r.db.Create(department).Error
}

func (r *DepartmentRepository) GetDepartments() ([]*Department, error) {
	var records = make([]*Department, 0)

	err := r.db.Order("name").Find(&records).Error

	return records, err
}

func (r *DepartmentRepository) RenameDepartment(departmentID int64, name string) (int64, error) {
	result := r.db.Model(&Department{}).
		Where("id = ?", departmentID).
		Update("name", name)

	return result.RowsAffected, result.Error
}

func (r *DepartmentRepository) DeleteDepartment(departmentID int64) (int64, error) {
	result := r.db.Where("id = ?", departmentID).Delete(&Department{})

	return result.RowsAffected, result.Error
}
