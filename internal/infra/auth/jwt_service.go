// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"sentinel/config"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const deviceIssuer = "sentinel"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Device == "" {
		return nil, errors.New("device token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Device),
		now:    time.Now,
	}, nil
}

// GenerateDeviceToken issues an HS256 token naming device as subject.
func (s *jwtService) GenerateDeviceToken(device string, ttl time.Duration) (string, error) {
	if device == "" {
		return "", errors.New("device name must be provided")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := s.now()
	claims := &service.DeviceClaims{
		Device: device,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    deviceIssuer,
			Subject:   device,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)

	return token, errors.WithStack(err)
}

// ValidateToken checks the signature, issuer and expiry of a device token.
func (s *jwtService) ValidateToken(tokenString string) (*service.DeviceClaims, error) {
	claims := &service.DeviceClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuer(deviceIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "invalid device token")
	}
	if claims.Device == "" {
		return nil, errors.New("invalid device token: no device")
	}

	return claims, nil
}
