package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
	RolUsuario  = "usuario"
)

var RolesUsuario = []string{RolAdmin, RolVendedor, RolUsuario}

// Usuario stores system users with role-based access. PasswordHash never
// leaves the server: it is excluded from JSON and from response DTOs.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'usuario'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// RolValido reports whether r is a known role.
func RolValido(r string) bool {
	for _, v := range RolesUsuario {
		if v == r {
			return true
		}
	}
	return false
}
