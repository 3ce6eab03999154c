package document

type FileDocumentRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	DocumentTypeID string `json:"document_type_id" binding:"required,uuid"`
	Notes          string `json:"notes" binding:"omitempty,max=1000"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	TypeID       string `json:"type_id"`
	TypeName     string `json:"type_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	FiledBy      string `json:"filed_by"`
	FiledAt      string `json:"filed_at"`
	Notes        string `json:"notes,omitempty"`
}

type DocumentTypeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RetentionYears int    `json:"retention_years"`
}

type CategoryResponse struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Types []DocumentTypeResponse `json:"types"`
}
