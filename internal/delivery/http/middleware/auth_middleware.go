package middleware

import (
	"context"
	"net/http"
	"strings"

	"health-assessment-service/internal/domain/repository"
	"health-assessment-service/internal/service"
	"health-assessment-service/pkg/jwt"
	"health-assessment-service/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	SessionIDKey contextKey = "session_id"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenRepo  repository.SessionTokenRepository
	registry   *service.SessionRegistry
}

func NewAuthMiddleware(
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	tokenRepo repository.SessionTokenRepository,
	registry *service.SessionRegistry,
) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
		registry:   registry,
	}
}

// Authenticate resolves the bearer session token to a live session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		exists, err := m.tokenRepo.Exists(r.Context(), claims.SessionID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate session token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		sess, ok := m.registry.Get(claims.SessionID)
		if !ok {
			response.Unauthorized(w, "Session has expired")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		ctx = context.WithValue(ctx, SessionIDKey, claims.SessionID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the session resolved by Authenticate
func GetSessionFromContext(ctx context.Context) (*service.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*service.Session)
	return sess, ok
}

// GetSessionIDFromContext extracts session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
