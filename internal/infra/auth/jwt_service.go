// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fitlog/config"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/service"
	"fitlog/internal/errors"
)

// accessClaims is the wire form of an access token: "sub" carries the username,
// "id" the numeric user id.
type accessClaims struct {
	UserID *int64 `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte            // Symmetric signing key.
	method    jwt.SigningMethod // Fixed HMAC algorithm.
	accessTTL time.Duration     // Lifetime of login tokens.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, err := signingMethod(cfg.Auth.Algorithm)
	if err != nil {
		return nil, err
	}

	ttl := cfg.Auth.AccessTokenTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &jwtService{
		secret:    []byte(cfg.Auth.SecretKey),
		method:    method,
		accessTTL: ttl,
		now:       time.Now,
	}, nil
}

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", alg)
	}
}

// Issue creates a signed access token for the given user.
func (s *jwtService) Issue(username string, userID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := accessClaims{
		UserID: &userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, algorithm and expiry of a token and returns its subject.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUnauthenticated, "failed to parse token: %v", err)
	}

	if claims.Subject == "" || claims.UserID == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token is missing subject claims")
	}

	return &service.Claims{
		Username: claims.Subject,
		UserID:   *claims.UserID,
	}, nil
}

// AccessTTL returns the configured duration for login tokens.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}
