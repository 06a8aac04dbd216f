package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecret = errors.New("session secret is not configured")

// SessionClaims binds a session token to the wallet account that connected.
type SessionClaims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs an HS256 token for address, valid for ttl.
func GenerateSessionToken(secret string, address common.Address, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	now := time.Now()
	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Address: address.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(address.Hex()),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseSessionToken validates the signature and expiry and returns the
// session account.
func ParseSessionToken(secret, tokenString string) (common.Address, error) {
	if secret == "" {
		return common.Address{}, ErrMissingSecret
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return common.Address{}, err
	}
	if !token.Valid || !common.IsHexAddress(claims.Address) {
		return common.Address{}, errors.New("invalid session claims")
	}
	return common.HexToAddress(claims.Address), nil
}
