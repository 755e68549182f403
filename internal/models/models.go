package models

import (
	"gorm.io/gorm"
)

// Roles reconocidos del sistema. Se evalúan siempre en este orden:
// administrador primero.
const (
	RoleAdmin   = "administrador"
	RoleTeacher = "maestro"
	RoleStudent = "alumno"
)

type User struct {
	gorm.Model
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"index;not null"` // administrador, maestro o alumno
}

// IsStaff indica si el usuario puede ser responsable de un evento.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleTeacher
}
