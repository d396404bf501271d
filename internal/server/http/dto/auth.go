package dto

// SignUpRequest describes the registration payload.
type SignUpRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,alphanum"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

// SignInRequest describes the credentials payload.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,alphanum"`
}

// SignInResponse carries the display name and the issued bearer token.
type SignInResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
