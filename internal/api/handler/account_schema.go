package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"  validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=candidate employer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a full profile replacement. Password is optional: when
// omitted the stored hash is retained.
type updateUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role"      validate:"required,oneof=candidate employer"`
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	ID string `json:"id"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type bulkRegisterResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}
