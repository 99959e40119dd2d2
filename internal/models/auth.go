package models

// LoginPayload is the request body for POST /api/v1/auth/login.
// RememberMe is forwarded to the backend verbatim; it never affects
// how long the client keeps the session locally.
type LoginPayload struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// SignUpPayload is the request body for POST /api/v1/auth/signup.
type SignUpPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

// AuthResponse is the success body of login and signup.
type AuthResponse struct {
	Token Token `json:"token"`
	User  User  `json:"user"`
}
