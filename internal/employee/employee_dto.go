package employee

type CreateEmployeeRequest struct {
	Name   string  `json:"name" binding:"required,min=2,max=50"`
	Salary float64 `json:"salary" binding:"required,gt=0"`
	Dept   string  `json:"dept" binding:"required,min=2,max=30"`
	Gender string  `json:"gender" binding:"required"`
	Email  string  `json:"email" binding:"omitempty,email"`
}

type UpdateEmployeeRequest struct {
	Name   string  `json:"name" binding:"required,min=2,max=50"`
	Salary float64 `json:"salary" binding:"required,gt=0"`
	Dept   string  `json:"dept" binding:"required,min=2,max=30"`
	Gender string  `json:"gender" binding:"required"`
	Email  string  `json:"email" binding:"omitempty,email"`
}

type EmployeeResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
	Dept   string  `json:"dept"`
	Gender string  `json:"gender"`
	Email  string  `json:"email,omitempty"`
}

// NameSalaryResponse is the name/salary projection used by the reporting
// endpoints.
type NameSalaryResponse struct {
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}

// AffectedResponse reports how many rows a bulk mutation touched.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}
