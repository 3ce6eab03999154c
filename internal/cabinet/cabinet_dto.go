package cabinet

type CreateCabinetRequest struct {
	Number         string `json:"number" binding:"required"`
	Location       string `json:"location"`
	DrawerCount    int    `json:"drawer_count" binding:"required,min=1,max=20"`
	DrawerCapacity int    `json:"drawer_capacity" binding:"omitempty,min=1,max=200"`
}

type CreateDrawerRequest struct {
	// CabinetID comes from the route path, not the body.
	CabinetID string `json:"-"`
	Number    int    `json:"number" binding:"required,min=1"`
	Capacity  int    `json:"capacity" binding:"required,min=1,max=200"`
	Label     string `json:"label"`
}

type AssignPositionRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	DrawerID   string `json:"drawer_id" binding:"required,uuid"`
	Position   int    `json:"position" binding:"required,min=1"`
}

type ReorganizationRequest struct {
	CriticalThreshold int `json:"critical_threshold"`
	MaxMoves          int `json:"max_moves"`
}

type CabinetResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Location    string `json:"location,omitempty"`
	DrawerCount int    `json:"drawer_count"`
	Active      bool   `json:"active"`
}

type DrawerResponse struct {
	ID        string `json:"id"`
	CabinetID string `json:"cabinet_id"`
	Number    int    `json:"number"`
	Capacity  int    `json:"capacity"`
	Label     string `json:"label,omitempty"`
}

type PositionResponse struct {
	ID         string `json:"id"`
	DrawerID   string `json:"drawer_id"`
	Position   int    `json:"position"`
	EmployeeID string `json:"employee_id,omitempty"`
	Occupied   bool   `json:"occupied"`
}
