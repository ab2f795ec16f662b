package projects

type SaveProjectRequestDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type AssignmentRequestDTO struct {
	EmployeeID int64 `json:"employeeId"`
	ProjectID  int64 `json:"projectId"`
}
