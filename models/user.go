package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform user.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	FamilyName   string    `bson:"family_name" json:"familyName"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Country      string    `bson:"country" json:"country"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Actor is the authenticated identity attached to a request. It is passed
// explicitly to every operation that needs ownership or role checks.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Name       string `json:"name" binding:"required"`
	FamilyName string `json:"familyName" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

// LoginInput is the payload for authentication.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateInput is the payload for a user updating their own profile.
type ProfileUpdateInput struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// AdminUserUpdateInput is the payload for an admin editing any user.
type AdminUserUpdateInput struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}
