// Package auth issues and validates the JWT token pairs used by the API and
// hashes account passwords.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the JWT claims structure attached to every issued token.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager signs and parses tokens with a shared HMAC secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair returns a fresh access/refresh token pair for a user.
func (m *Manager) IssuePair(userID uuid.UUID, email string, isStaff bool) (access, refresh string, err error) {
	access, err = m.issue(userID, email, isStaff, tokenTypeAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err = m.issue(userID, email, isStaff, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (m *Manager) issue(userID uuid.UUID, email string, isStaff bool, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		Email:     email,
		IsStaff:   isStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAccess validates an access token and returns its claims.
func (m *Manager) ParseAccess(tokenString string) (*Claims, error) {
	return m.parse(tokenString, tokenTypeAccess)
}

// ParseRefresh validates a refresh token and returns its claims.
func (m *Manager) ParseRefresh(tokenString string) (*Claims, error) {
	return m.parse(tokenString, tokenTypeRefresh)
}

func (m *Manager) parse(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// RefreshAccess exchanges a valid refresh token for a new access token.
func (m *Manager) RefreshAccess(refreshToken string) (string, error) {
	claims, err := m.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return m.issue(claims.UserID, claims.Email, claims.IsStaff, tokenTypeAccess, m.accessTTL)
}

// HashPassword hashes a plain password, returning a lowercase hex string.
func HashPassword(plainPassword string) string {
	if plainPassword == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(plainPassword))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword compares a plain password with a stored hash.
func VerifyPassword(plainPassword, storedHash string) bool {
	if plainPassword == "" || storedHash == "" {
		return false
	}

	return strings.EqualFold(HashPassword(plainPassword), storedHash)
}
