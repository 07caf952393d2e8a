package entity

import (
	"gorm.io/gorm"
)

// User is a staff account. Kept for future extension (authentication); the
// current API carries no auth and only the startup seed writes this table.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
}
