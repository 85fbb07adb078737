package token

import (
	"net/http"
	"time"

	"go-ems/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// Config carries the signing key and token lifetime. The secret is injected
// at startup, never read from the environment here.
type Config struct {
	Secret string
	TTL    time.Duration
}

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type Service interface {
	// Issue mints a signed token embedding subjectID, expiring TTL from now.
	Issue(subjectID string) (string, error)

	// Verify checks signature and expiry and returns the embedded subject id.
	// Any failure mode (bad signature, malformed payload, wrong method,
	// expired) is ErrInvalidToken.
	Verify(tokenString string) (string, error)
}

type service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg Config) Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &service{secret: []byte(cfg.Secret), ttl: ttl}
}

func (s *service) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *service) Verify(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	subjectID, ok := claims["user_id"].(string)
	if !ok || subjectID == "" {
		return "", ErrInvalidToken
	}

	return subjectID, nil
}
