package auth

import (
	"cashback-cards/internal/config"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(config.Config{JWTSecret: secret, JWTExpiresIn: ttl})
}

func TestTokenRoundTrip(t *testing.T) {
	s := newService("secret", time.Hour)

	token, err := s.GenerateToken(123456789)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	userID, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != 123456789 {
		t.Errorf("userID = %d, want 123456789", userID)
	}
}

func TestGenerateTokenRejectsNonPositiveID(t *testing.T) {
	s := newService("secret", time.Hour)
	if _, err := s.GenerateToken(0); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("GenerateToken(0) error = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenFailures(t *testing.T) {
	s := newService("secret", time.Hour)
	valid, err := s.GenerateToken(42)
	if err != nil {
		t.Fatal(err)
	}

	expired := newService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(42)
	if err != nil {
		t.Fatal(err)
	}

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	negative, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": -5,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		service *TokenService
		token   string
	}{
		{"garbage", s, "not-a-token"},
		{"wrong secret", newService("other", time.Hour), valid},
		{"expired", s, expiredToken},
		{"missing user_id", s, noUser},
		{"negative user_id", s, negative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.service.ParseToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
