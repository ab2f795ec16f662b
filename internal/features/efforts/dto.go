package efforts

type SaveEffortRequestDTO struct {
	EmployeeID int64   `json:"employeeId"`
	ProjectID  int64   `json:"projectId"`
	Week       int     `json:"week"`
	Effort     float64 `json:"effort"`
	Days       int     `json:"days"`
}

type ClearViewRequestDTO struct {
	EmployeeIDs []int64 `json:"employeeIds"`
	WeekValues  []int   `json:"weekValues"`
}
