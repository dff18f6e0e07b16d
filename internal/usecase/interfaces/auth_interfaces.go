package interfaces

import "ecertidoes/internal/domain/entities"

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	UserID uint64
	Email  string
	Role   entities.UserRole
}

type ITokenManager interface {
	Issue(u entities.User) (string, error)
	Parse(token string) (TokenClaims, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
