package request

import "ecertidoes/internal/usecase"

type RegisterRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Email:     r.Email,
		Password:  r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
