package db_models

import (
	"github.com/google/uuid"
)

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	BaseModel
	Name         string     `gorm:"not null"`
	Email        string     `gorm:"unique;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         string     `gorm:"type:varchar(16);not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid"` // set only for employees
}
