package entities

import "time"

type UserRole string

const (
	UserRoleCliente UserRole = "cliente"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCliente, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `json:"id"`
	Nome         string    `json:"nome"`
	Sobrenome    string    `json:"sobrenome,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
