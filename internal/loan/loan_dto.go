package loan

const dateLayout = "2006-01-02"

type CreateLoanRequest struct {
	EmployeeID    string `json:"employee_id" binding:"required,uuid"`
	Requester     string `json:"requester" binding:"required,min=3,max=150"`
	RequesterUnit string `json:"requester_unit" binding:"omitempty,max=150"`
	Purpose       string `json:"purpose" binding:"omitempty,max=500"`
	DueDate       string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// ReturnLoanRequest closes a loan. Both fields are optional: the return
// date defaults to today.
type ReturnLoanRequest struct {
	ActualReturnDate string `json:"actual_return_date" binding:"omitempty,datetime=2006-01-02"`
	ReturnNotes      string `json:"return_notes" binding:"omitempty,max=500"`
}

type LoanResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	Requester     string `json:"requester"`
	RequesterUnit string `json:"requester_unit,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	Status        string `json:"status"`
	LoanDate      string `json:"loan_date"`
	DueDate       string `json:"due_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
	LoanedBy      string `json:"loaned_by"`
	ReturnedBy    string `json:"returned_by,omitempty"`
	ReturnNotes   string `json:"return_notes,omitempty"`
	Overdue       bool   `json:"overdue"`
}
