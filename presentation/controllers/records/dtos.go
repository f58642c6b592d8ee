package records

// BatchRequest carries the record ids for batch archive, restore and
// permanent delete.
type BatchRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
	Item    any    `json:"item,omitempty"`
}

type CountResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
