package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       uuid.UUID `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateUser kısmi güncelleme isteğidir; nil alanlar mevcut değeri korur.
type UpdateUser struct {
	Username *string    `json:"username"`
	Email    *string    `json:"email"`
	RoleID   *uuid.UUID `json:"role_id"`
}

type UserRepository interface {
	FindAll() ([]*User, error)
	FindByID(id uuid.UUID) (*User, error)
	Create(username, email, passwordHash string, roleID uuid.UUID) (*User, error)
	Update(id uuid.UUID, upd *UpdateUser) (*User, error)
	Delete(id uuid.UUID) error
}

type UserService interface {
	GetUsers() ([]*User, error)
	GetUserByID(id uuid.UUID) (*User, error)
	CreateUser(username, email, passwordHash string, roleID uuid.UUID) (*User, error)
	UpdateUser(id uuid.UUID, upd *UpdateUser) (*User, error)
	DeleteUser(id uuid.UUID) error
}
