package model

// Role is the closed set of access levels a user can hold.
type Role string

const (
	// RoleAdmin grants full access, including user management and deletes.
	RoleAdmin Role = "ADMIN"
	// RoleEmployee is the default role for shop staff.
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// User represents an authenticated principal with a role.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;size:25;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Role         Role   `json:"role" gorm:"size:20;not null;default:'EMPLOYEE'"`
}
