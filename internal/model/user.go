package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Roles are checked by exhaustive
// matching — never by comparing raw request strings.
type Role string

const (
	RoleBaseUser      Role = "Base User"
	RoleAdmin         Role = "Admin"
	RoleSupport       Role = "Support"
	RoleManager       Role = "Manager"
	RoleDistributor   Role = "Distributor"
	RoleBranchManager Role = "Branch Manager"
	RoleStaff         Role = "Staff"
)

// ParseRole maps an input string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBaseUser, RoleAdmin, RoleSupport, RoleManager,
		RoleDistributor, RoleBranchManager, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User stores system accounts with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PhoneNumber  *string   `gorm:"uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'Base User'"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
