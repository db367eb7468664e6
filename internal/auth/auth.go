package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidLogin = errors.New("invalid email or password")

// CookieName carries the signed token on admin requests.
const CookieName = "auth-token"

// ----------------------------
// Context helpers (for middleware and handlers)
// ----------------------------

type ctxKeyEmail struct{}

func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKeyEmail{}, email)
}

func EmailFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(ctxKeyEmail{})
	if v == nil {
		return "", false
	}
	email, _ := v.(string)
	return email, email != ""
}

// ----------------------------
// Tokens (stateless, HMAC-signed)
// ----------------------------

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken signs a token embedding the identity with the given
// lifetime. Two tokens for the same identity differ (random jti) but
// are independently valid until expiry.
func IssueToken(secret, email string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry and returns the embedded
// identity. Any failure (malformed, tampered, expired) is reported as
// ok=false, never as a panic or error.
func VerifyToken(secret, token string) (string, bool) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", false
	}
	return claims.Email, true
}

// ----------------------------
// Credentials
// ----------------------------

// CheckCredentials compares a login attempt against the configured
// admin identity. passHash is a bcrypt hash.
func CheckCredentials(adminEmail, passHash, email, password string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	if email != strings.ToLower(adminEmail) {
		log.Printf("auth.CheckCredentials: unknown email=%s", email)
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passHash), []byte(password)); err != nil {
		log.Printf("auth.CheckCredentials: bad password for email=%s", email)
		return false
	}
	return true
}
