package api

type ErrorResponse struct {
	Error string `json:"error" example:"all fields are required"`
}

type MessageResponse struct {
	Message string `json:"message" example:"status updated"`
}

type CreatedResponse struct {
	ID      int64  `json:"id" example:"1"`
	Message string `json:"message" example:"booking created"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
