// auth проверяет сессионные токены, выданные провайдером идентичности.
//
// Токен — JWT HS256 с claims uid (идентификатор пользователя) и
// jti (идентификатор сессии, по нему работает отзыв при выходе).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Session — проверенная сессия.
type Session struct {
	UserID    uuid.UUID
	SessionID string
	ExpiresAt time.Time
}

// Verifier проверяет подпись и стандартные claims токена.
type Verifier struct {
	secret   []byte
	issuer   string
	audience []string
	leeway   time.Duration
	ttl      time.Duration
}

// NewVerifier создаёт Verifier по секции auth конфигурации.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		leeway:   cfg.Leeway,
		ttl:      cfg.SessionTTL,
	}
}

// Verify разбирает токен и возвращает сессию.
func (v *Verifier) Verify(tokenStr string) (*Session, error) {
	const op = "auth/token/Verify"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if len(v.audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil || uid == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Session{
		UserID:    uid,
		SessionID: claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Issue подписывает токен новой сессии пользователя.
// Используется локальными окружениями и тестами вместо провайдера идентичности.
func (v *Verifier) Issue(userID uuid.UUID, now time.Time) (string, *Session, error) {
	const op = "auth/token/Issue"

	sid := uuid.NewString()
	exp := now.Add(v.ttl)

	claims := sessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   userID.String(),
			Issuer:    v.issuer,
			Audience:  jwt.ClaimStrings(v.audience),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return signed, &Session{UserID: userID, SessionID: sid, ExpiresAt: exp}, nil
}
