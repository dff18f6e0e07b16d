package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
	mock_interfaces "ecertidoes/internal/usecase/interfaces/mocks"
)

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil)
		if _, err := uc.Register(ctx, RegisterInput{Email: "a@b.com"}); !errors.Is(err, ErrInvalidRegistration) {
			t.Fatalf("expected ErrInvalidRegistration, got %v", err)
		}
	})

	t.Run("email already used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{ID: 1}, nil)

		_, err := uc.Register(ctx, RegisterInput{Nome: "Ana", Email: " ANA@test.com ", Password: "x"})
		if !errors.Is(err, ErrEmailAlreadyUsed) {
			t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
		}
	})

	t.Run("creates customer with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash != "hashed" || u.Role != entities.UserRoleCliente {
					t.Fatalf("unexpected user: %+v", u)
				}
				u.ID = 7
				return u, nil
			},
		)

		u, err := uc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ana@test.com", Password: "s3cret"})
		if err != nil || u.ID != 7 {
			t.Fatalf("unexpected result: %+v %v", u, err)
		}
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil, nil)

		users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicateKey)

		_, err := uc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ana@test.com", Password: "s3cret"})
		if !errors.Is(err, ErrEmailAlreadyUsed) {
			t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	stored := entities.User{ID: 7, Email: "ana@test.com", PasswordHash: "hashed", Role: entities.UserRoleCliente}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{}, nil)

		if _, _, err := uc.Login(ctx, "ana@test.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(stored, nil)
		hasher.EXPECT().Compare("hashed", "x").Return(errors.New("mismatch"))

		_, _, err := uc.Login(ctx, "ana@test.com", "x")
		if !errors.Is(err, ErrInvalidCredentials) || KindOf(err) != KindUnauthorized {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(users, hasher, tokens, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(stored, nil)
		hasher.EXPECT().Compare("hashed", "s3cret").Return(nil)
		tokens.EXPECT().Issue(stored).Return("jwt", nil)

		u, token, err := uc.Login(ctx, "Ana@Test.com", "s3cret")
		if err != nil || token != "jwt" || u.ID != 7 {
			t.Fatalf("unexpected result: %+v %q %v", u, token, err)
		}
	})
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when not configured", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil)
		if err := uc.EnsureAdmin(ctx, "Admin", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "admin@test.com").Return(entities.User{ID: 1, Role: entities.UserRoleAdmin}, nil)

		if err := uc.EnsureAdmin(ctx, "Admin", "admin@test.com", "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
