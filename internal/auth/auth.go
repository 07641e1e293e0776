package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdg-garage/trip-hotels-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const TokenDuration = 24 * time.Hour

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("no session for token")
)

type SessionRepository interface {
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type AuthHandler struct {
	secret   []byte
	sessions SessionRepository
}

func NewAuthHandler(secret string, sessions SessionRepository) *AuthHandler {
	return &AuthHandler{secret: []byte(secret), sessions: sessions}
}

// GenerateToken signs a token for userID. Sign-in persists it as a Session;
// this service only verifies it.
func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// Authenticate resolves an Authorization header value to a user id.
func (h *AuthHandler) Authenticate(ctx context.Context, header string) (uint, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return 0, ErrMissingToken
	}

	userID, err := h.parse(tokenString)
	if err != nil {
		return 0, err
	}

	session, err := h.sessions.FindByToken(ctx, tokenString)
	if err != nil {
		return 0, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return 0, ErrSessionExpired
	}

	return userID, nil
}

func (h *AuthHandler) parse(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	raw, ok := claims["userId"]
	if !ok {
		raw = claims["user_id"]
	}
	userIDFloat, ok := raw.(float64)
	if !ok || userIDFloat <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(userIDFloat), nil
}
