package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/response"
)

// Claims carries the identity and role a token proves.
type Claims struct {
	UserExtID string `json:"user_ext_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies access and refresh tokens. The two token kinds
// are signed with separate secrets so a refresh token can never pass as an
// access token.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL reports the refresh-token lifetime, used for the cookie expiry.
func (s *Service) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *Service) GenerateAccessToken(userExtID, role string) (string, error) {
	return s.generate(userExtID, role, s.accessSecret, s.accessTTL)
}

func (s *Service) GenerateRefreshToken(userExtID, role string) (string, error) {
	return s.generate(userExtID, role, s.refreshSecret, s.refreshTTL)
}

func (s *Service) generate(userExtID, role string, secret []byte, ttl time.Duration) (string, error) {
	if userExtID == "" {
		return "", errors.New("user_ext_id cannot be empty")
	}

	if len(secret) == 0 {
		return "", errors.New("signature_key cannot be empty")
	}

	claims := Claims{
		UserExtID: userExtID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *Service) ValidateAccessToken(tokenStr string) (*Claims, error) {
	return validate(tokenStr, s.accessSecret)
}

func (s *Service) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return validate(tokenStr, s.refreshSecret)
}

func validate(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Middleware authenticates the request from its Authorization header and
// attaches the decoded identity to the echo context. Role checks happen in a
// separate middleware downstream.
func (s *Service) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return response.ErrorDetails(c, 401, "Unauthorized access.", "missing authorization token")
			}

			claims, err := s.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return response.ErrorDetails(c, 401, "Unauthorized access.", "Invalid or expired token.")
			}

			c.Set(string(constant.CtxKeyUserExtID), claims.UserExtID)
			c.Set(string(constant.CtxKeyUserRole), claims.Role)
			return next(c)
		}
	}
}

// GetUserExtIDFromContext extracts user_ext_id from echo context
func GetUserExtIDFromContext(c echo.Context) (string, error) {
	userExtID, ok := c.Get(string(constant.CtxKeyUserExtID)).(string)
	if !ok || userExtID == "" {
		return "", errors.New("user_ext_id not found in context")
	}
	return userExtID, nil
}
