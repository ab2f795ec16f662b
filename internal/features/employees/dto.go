package employees

type CreateEmployeeRequestDTO struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	EmployeeNumber string `json:"employeeNumber"`
}

// UpdateEmployeeRequestDTO carries only the fields present in the
// request body; nil means "leave unchanged".
type UpdateEmployeeRequestDTO struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Department     *string `json:"department"`
	EmployeeNumber *string `json:"employeeNumber"`
}
