package audit

type BatchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

type CountResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
