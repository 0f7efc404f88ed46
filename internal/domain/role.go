package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `json:"id"`
	RoleName    string    `json:"role_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateRole kısmi güncelleme isteğidir; nil alanlar mevcut değeri korur.
type UpdateRole struct {
	RoleName    *string `json:"role_name"`
	Description *string `json:"description"`
}

type RoleRepository interface {
	FindAll() ([]*Role, error)
	FindByID(id uuid.UUID) (*Role, error)
	Create(roleName, description string) (*Role, error)
	Update(id uuid.UUID, upd *UpdateRole) (*Role, error)
	Delete(id uuid.UUID) error
}

type RoleService interface {
	GetRoles() ([]*Role, error)
	GetRoleByID(id uuid.UUID) (*Role, error)
	CreateRole(roleName, description string) (*Role, error)
	UpdateRole(id uuid.UUID, upd *UpdateRole) (*Role, error)
	DeleteRole(id uuid.UUID) error
}
