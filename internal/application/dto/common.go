package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}
