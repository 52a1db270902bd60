package models

// Response is the envelope every API response starts with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request. Error carries the
// underlying provider or database message on internal failures.
type ErrorResponse struct {
	Response
	Error string `json:"error,omitempty"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	Response
	User     User   `json:"user"`
	JWTToken string `json:"jwtToken,omitempty"`
}

// UserResponse is returned by /api/auth/me.
type UserResponse struct {
	Response
	User User `json:"user"`
}

// ResumeUploadResponse is returned after a successful upload.
type ResumeUploadResponse struct {
	Response
	Resume ResumeSummary `json:"resume"`
}

// ResumeListResponse lists catalog records, newest first.
type ResumeListResponse struct {
	Response
	Resumes []Resume `json:"resumes"`
}

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Response
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
