package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/receptionist-dashboard/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const bcryptCost = 12

// Service verifies the receptionist credential pair and issues the signed
// session token carried in the auth cookie. The single configured user is a
// stand-in for a real identity provider; the verification path (bcrypt hash
// comparison, signed expiring token) is the shape a real one would keep.
type Service struct {
	username     string
	passwordHash []byte
	secret       []byte
	sessionTTL   time.Duration
}

func NewService(cfg config.AuthConfig) (*Service, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		// Development fallback: hash the configured plaintext at startup so
		// the literal never participates in comparisons.
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash configured password: %w", err)
		}
	}

	return &Service{
		username:     cfg.Username,
		passwordHash: hash,
		secret:       []byte(cfg.SessionSecret),
		sessionTTL:   time.Duration(cfg.SessionHours) * time.Hour,
	}, nil
}

// Verify checks a credential pair against the configured user.
func (s *Service) Verify(username, password string) error {
	if username != s.username {
		// Burn a comparison anyway so both failure paths cost the same.
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken creates the signed session token stored in the auth cookie.
func (s *Service) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks a session token and returns the subject username.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("invalid session claims")
	}
	return claims.Subject, nil
}

// SessionTTL is the configured cookie lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
