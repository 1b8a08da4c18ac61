package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DeviceClaims are the claims of a device token. The subject is the device
// name; positions posted with the token are attributed to it.
type DeviceClaims struct {
	Device string `json:"device"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the bearer tokens devices use to post
// positions to the agent.
type TokenService interface {
	// GenerateDeviceToken issues a token for device valid for ttl.
	GenerateDeviceToken(device string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*DeviceClaims, error)
}
