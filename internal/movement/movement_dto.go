package movement

type RecordMovementRequest struct {
	Action    string `json:"action" binding:"required"`
	Reference string `json:"reference"`
	ItemLabel string `json:"item_label"`
	FromUnit  string `json:"from_unit"`
	ToUnit    string `json:"to_unit"`
	Note      string `json:"note"`
}

type MovementResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	ItemLabel string `json:"item_label,omitempty"`
	FromUnit  string `json:"from_unit,omitempty"`
	ToUnit    string `json:"to_unit,omitempty"`
	Action    string `json:"action"`
	Note      string `json:"note,omitempty"`
	Actor     string `json:"actor"`
	CreatedAt string `json:"created_at"`
}
