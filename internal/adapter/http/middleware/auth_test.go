package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestOwnerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key := []byte("secret")

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", OwnerAuth("secret"), func(c *gin.Context) {
			c.String(http.StatusOK, OwnerID(c))
		})
		return r
	}
	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		if w := call(""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := SignOwnerToken(key, "owner-1", time.Hour)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		w := call("Bearer " + tok)
		if w.Code != http.StatusOK || w.Body.String() != "owner-1" {
			t.Fatalf("expected owner-1, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("expired token", func(t *testing.T) {
		tok, _ := SignOwnerToken(key, "owner-1", -time.Minute)
		if w := call("Bearer " + tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		tok, _ := SignOwnerToken([]byte("other"), "owner-1", time.Hour)
		if w := call("Bearer " + tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no expiry", func(t *testing.T) {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "owner-1"}).SignedString(key)
		if w := call("Bearer " + tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestVerifyOwnerToken(t *testing.T) {
	tok, _ := SignOwnerToken([]byte("secret"), "owner-1", time.Hour)
	if _, err := VerifyOwnerToken(nil, tok); err == nil {
		t.Fatalf("an unset secret must reject every token")
	}
	empty, _ := SignOwnerToken([]byte("secret"), " ", time.Hour)
	if _, err := VerifyOwnerToken([]byte("secret"), empty); err == nil {
		t.Fatalf("a blank subject must be rejected")
	}
	if got, err := VerifyOwnerToken([]byte("secret"), tok); err != nil || got != "owner-1" {
		t.Fatalf("expected owner-1, got %q %v", got, err)
	}
}
