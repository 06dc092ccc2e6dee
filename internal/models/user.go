package models

import (
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

type User struct {
	gorm.Model
	Email string `json:"email" gorm:"column:email;unique;not null"`
	Role  string `json:"role" gorm:"column:role;not null;default:'user'"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
