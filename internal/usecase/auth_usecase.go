package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

type RegisterInput struct {
	Nome      string
	Sobrenome string
	Email     string
	Password  string
}

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	EnsureAdmin(ctx context.Context, nome, email, password string) error
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenManager
	log    *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenManager, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, log: log.Named("auth.usecase")}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	email := normalizeEmail(in.Email)
	if strings.TrimSpace(in.Nome) == "" || email == "" || in.Password == "" {
		return entities.User{}, ErrInvalidRegistration
	}
	return u.create(ctx, entities.User{
		Nome:      strings.TrimSpace(in.Nome),
		Sobrenome: strings.TrimSpace(in.Sobrenome),
		Email:     email,
		Role:      entities.UserRoleCliente,
	}, in.Password)
}

func (u *AuthUseCase) create(ctx context.Context, user entities.User, password string) (entities.User, error) {
	existing, err := u.users.GetByEmail(ctx, user.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrEmailAlreadyUsed
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	user.PasswordHash = hash

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.User{}, ErrEmailAlreadyUsed
		}
		return entities.User{}, err
	}
	u.log.Info("user registered", zap.Uint64("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	user, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == 0 {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

// EnsureAdmin creates the bootstrap administrator when it does not exist yet.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, nome, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}
	_, err := u.create(ctx, entities.User{Nome: nome, Email: email, Role: entities.UserRoleAdmin}, password)
	if errors.Is(err, ErrEmailAlreadyUsed) {
		return nil
	}
	return err
}
