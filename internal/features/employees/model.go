package employees

type Employee struct {
	ID             int64  `json:"id"             gorm:"column:id;primaryKey;autoIncrement"`
	Name           string `json:"name"           gorm:"column:name"`
	Department     string `json:"department"     gorm:"column:department"`
	EmployeeNumber string `json:"employeeNumber" gorm:"column:employee_number"`
	Email          string `json:"email"          gorm:"column:email"`
}

func (Employee) TableName() string {
	return "employees"
}
