package employee

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FullName      string `json:"full_name" binding:"required,min=3,max=150"`
	Registration  string `json:"registration" binding:"required,max=50"`
	NationalID    string `json:"national_id" binding:"omitempty,max=20"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
	AdmissionDate string `json:"admission_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateEmployeeRequest struct {
	FullName      string `json:"full_name" binding:"omitempty,min=3,max=150"`
	NationalID    string `json:"national_id" binding:"omitempty,max=20"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
	AdmissionDate string `json:"admission_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes" binding:"omitempty,max=1000"`
}

type ListEmployeesQuery struct {
	Status       string `form:"status" binding:"omitempty,oneof=ACTIVE TERMINATED"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Search       string `form:"search" binding:"omitempty,max=100"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PerPage      int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type TerminateEmployeeRequest struct {
	TerminationDate string `json:"termination_date" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Registration    string `json:"registration"`
	NationalID      string `json:"national_id,omitempty"`
	Status          string `json:"status"`
	DepartmentID    string `json:"department_id,omitempty"`
	DepartmentName  string `json:"department_name,omitempty"`
	Location        string `json:"location,omitempty"`
	AdmissionDate   string `json:"admission_date,omitempty"`
	TerminationDate string `json:"termination_date,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type DocumentSummary struct {
	ID       string `json:"id"`
	TypeName string `json:"type_name"`
	FiledBy  string `json:"filed_by,omitempty"`
	FiledAt  string `json:"filed_at"`
}

type LoanSummary struct {
	ID        string `json:"id"`
	Requester string `json:"requester"`
	Status    string `json:"status"`
	LoanDate  string `json:"loan_date"`
	DueDate   string `json:"due_date,omitempty"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	Documents   []DocumentSummary `json:"documents"`
	ActiveLoans []LoanSummary     `json:"active_loans"`
}
