package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	StaffIDKey          = "staffID" // Key for storing the token subject in fiber.Ctx locals

	RoleStaff = "staff"
)

// Reasons reported in the details of a 401 response.
const (
	ReasonMissingHeader = "missing_auth_header"
	ReasonInvalidScheme = "invalid_auth_scheme"
	ReasonEmptyToken    = "empty_token"
	ReasonInvalidToken  = "invalid_token"
)

// TokenValidator verifies staff bearer tokens.
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator for HS256 tokens from issuer.
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret), issuer: issuer}
}

// Validate parses tokenString and checks signature, expiry, issuer and role.
func (v *TokenValidator) Validate(tokenString string) (*dto.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token has expired")
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Role != RoleStaff {
		return nil, fmt.Errorf("role %q is not allowed", claims.Role)
	}
	return claims, nil
}

// Issue signs a staff token for subject valid for ttl. Used by ops tooling and tests.
func (v *TokenValidator) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		Role: RoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Protected requires a valid staff JWT and stores its subject in the context.
func Protected(validator *TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing").
				WithContext("reason", ReasonMissingHeader)
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer").
				WithContext("reason", ReasonInvalidScheme)
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty").
				WithContext("reason", ReasonEmptyToken)
		}

		claims, err := validator.Validate(tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation failed", zap.Error(err), zap.String("request_id", RequestID(c)))
			return domain.NewUnauthorizedError("Invalid or expired token").
				WithContext("reason", ReasonInvalidToken)
		}

		c.Locals(StaffIDKey, claims.Subject)
		return c.Next()
	}
}
