package dto

// AdminLoginRequest body de POST /api/login/admin.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CodeLoginRequest body de login por código (fábrica "F01", personal "P12", cliente "M05").
type CodeLoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// LoginResponse token JWT y datos visibles del usuario.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
	Code     string `json:"code,omitempty"`
}

// RegisterCustomerResponse cliente creado con su código.
type RegisterCustomerResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"customer_id"`
	Code    string `json:"customer_code"`
	Name    string `json:"name"`
	City    string `json:"city"`
}
