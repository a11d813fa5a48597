package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"doctrust/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ownerIDKey = "owner_id"

var (
	ErrInvalidToken = errors.New("invalid token")

	errMissingBearer = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errBadBearer     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
)

// OwnerAuth accepts HS256 bearer tokens and exposes their subject as the owner id.
func OwnerAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(errMissingBearer.HTTPStatus, errMissingBearer.ToHTTPError())
			return
		}
		ownerID, err := VerifyOwnerToken(key, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(errBadBearer.HTTPStatus, errBadBearer.ToHTTPError())
			return
		}
		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

// VerifyOwnerToken returns the sub claim of a valid token. An empty key rejects everything.
func VerifyOwnerToken(key []byte, raw string) (string, error) {
	if len(key) == 0 {
		return "", ErrInvalidToken
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// SignOwnerToken issues a token for ownerID. Used by tests and local tooling.
func SignOwnerToken(key []byte, ownerID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// OwnerID is the authenticated owner, empty on public routes.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}

// SetOwnerID lets handler tests stand in for OwnerAuth.
func SetOwnerID(ownerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}
