package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrEmptySecret   = errors.New("api key secret is empty")
)

const apiKeyType = "apikey"

// HashAPIKey returns the bcrypt hash stored in API_KEY_HASH.
func HashAPIKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func MatchAPIKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

// IssueAPIKey signs an HS256 key for subject. A zero ttl never expires.
func IssueAPIKey(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"typ": apiKeyType,
		"iat": now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAPIKey checks a signed key and returns its subject.
func VerifyAPIKey(secret, key string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	token, err := jwt.Parse(key, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidAPIKey
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", ErrInvalidAPIKey
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidAPIKey
	}
	if typ, _ := claims["typ"].(string); typ != apiKeyType {
		return "", ErrInvalidAPIKey
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}
