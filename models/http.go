package models

// SignupRequest is the JSON body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsOps    bool   `json:"is_ops"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token back to the caller.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// EmailRequest is the JSON body of the forgot-password and
// resend-verification endpoints. Both flows accept a bare address.
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the JSON body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// UploadResponse confirms a successful upload and hands the operator the
// minted capability link for the new record.
type UploadResponse struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

// MessageResponse is the generic single-message envelope used by flows that
// return no data. The enumeration-sensitive endpoints always answer with the
// same fixed message regardless of whether the account exists.
type MessageResponse struct {
	Message string `json:"message"`
}
