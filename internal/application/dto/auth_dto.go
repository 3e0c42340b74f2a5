package dto

// LoginRequest credenciales del operador; se reenvían al backend tal cual.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token de sesión local firmado más la identidad del operador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse identidad del operador autenticado.
type UserResponse struct {
	ID      int64  `json:"id"`
	StoreID int64  `json:"store_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}
