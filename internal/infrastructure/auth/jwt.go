package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/infrastructure/config"
	"ecertidoes/internal/usecase/interfaces"
)

var jwtSigningMethod = jwt.SigningMethodHS256

type accessTokenClaims struct {
	UserID uint64            `json:"id"`
	Email  string            `json:"email"`
	Role   entities.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager mints and validates HS256 access tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenManager = (*JWTManager)(nil)

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive")
	}
	return &JWTManager{secret: []byte(cfg.Secret), issuer: cfg.Issuer, ttl: cfg.TTL, now: time.Now}, nil
}

func (m *JWTManager) Issue(u entities.User) (string, error) {
	now := m.now()
	claims := accessTokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) Parse(tokenString string) (interfaces.TokenClaims, error) {
	claims := &accessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return interfaces.TokenClaims{}, err
	}
	if claims.UserID == 0 || !claims.Role.Valid() {
		return interfaces.TokenClaims{}, fmt.Errorf("invalid token claims")
	}
	return interfaces.TokenClaims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
