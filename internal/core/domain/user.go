package domain

import "time"

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// ValidRole reports whether role is one of the two marketplace roles.
func ValidRole(role string) bool {
	return role == RoleCandidate || role == RoleEmployer
}

// User models an account in the marketplace. FullName doubles as the unique
// display name (the "username" uniqueness check operates on it).
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	FullName     string    `json:"full_name" bson:"full_name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
