package response

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type Success struct {
	Success bool `json:"success"`
}
