package userservice

// User модель пользователя из UserService
type User struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
