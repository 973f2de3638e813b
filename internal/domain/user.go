package domain

import "time"

// User é um operador do back-office. Apenas admin pode excluir produtos.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é o papel gravado no usuário e repetido nas claims do JWT.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Valid informa se o papel é um dos conhecidos pela API.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserRegistration é o corpo de POST /v1/register. Novos cadastros sempre recebem RoleUser.
type UserRegistration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
