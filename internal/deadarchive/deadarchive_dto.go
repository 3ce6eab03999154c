package deadarchive

const dateLayout = "2006-01-02"

type CreateBoxRequest struct {
	BoxNumber string `json:"box_number" binding:"required,max=50"`
	Year      int    `json:"year" binding:"required,min=1900,max=2200"`
	Capacity  int    `json:"capacity" binding:"required,min=1,max=500"`
	Location  string `json:"location" binding:"omitempty,max=150"`
}

// TransferRequest moves an employee record into a box. The eligibility
// date can be given outright; otherwise it is transfer date plus
// retention years.
type TransferRequest struct {
	EmployeeID           string `json:"employee_id" binding:"required,uuid"`
	BoxID                string `json:"box_id" binding:"required,uuid"`
	RetentionYears       int    `json:"retention_years" binding:"omitempty,min=1,max=100"`
	DisposalEligibleDate string `json:"disposal_eligible_date" binding:"omitempty,datetime=2006-01-02"`
}

type DisposalRequest struct {
	ItemIDs    []string `json:"item_ids" binding:"required,min=1,dive,uuid"`
	TermNumber string   `json:"term_number" binding:"omitempty,max=50"`
}

type BoxResponse struct {
	ID           string `json:"id"`
	BoxNumber    string `json:"box_number"`
	Year         int    `json:"year"`
	Capacity     int    `json:"capacity"`
	CurrentCount int    `json:"current_count"`
	Location     string `json:"location,omitempty"`
}

type ItemResponse struct {
	ID                   string `json:"id"`
	BoxID                string `json:"box_id"`
	BoxNumber            string `json:"box_number,omitempty"`
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name"`
	ArchivedAt           string `json:"archived_at"`
	DisposalEligibleDate string `json:"disposal_eligible_date"`
	Disposed             bool   `json:"disposed"`
	DisposedAt           string `json:"disposed_at,omitempty"`
	DisposalTerm         string `json:"disposal_term,omitempty"`
}

// DisposalTermResponse is the receipt for a disposal batch: every item
// in the batch shares the term number and disposal date.
type DisposalTermResponse struct {
	TermNumber   string         `json:"term_number"`
	DisposalDate string         `json:"disposal_date"`
	DisposedBy   string         `json:"disposed_by"`
	Items        []ItemResponse `json:"items"`
}
