package dto

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@edumaster.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
	User      *UserProfile `json:"user"`
}

// UserProfile is the public view of a user returned by auth endpoints.
type UserProfile struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"John Doe"`
	Email string `json:"email" example:"john@edumaster.com"`
	Role  string `json:"role" example:"INSTRUCTOR"`
}
