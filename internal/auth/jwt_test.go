package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saulo-duarte/trivia-api/internal/auth"
)

const testSecret = "uma-chave-secreta-para-testes-segura-e-longa"
const testUserID = "user-123"
const testRole = "admin"

func TestInit(t *testing.T) {
	t.Cleanup(func() { auth.Init("") })

	t.Run("EmptySecretDisables", func(t *testing.T) {
		auth.Init("")

		if auth.Enabled() {
			t.Fatal("Enabled() should be false with an empty secret")
		}
		if _, err := auth.GenerateJWT(testUserID, testRole, time.Minute); !errors.Is(err, auth.ErrAuthDisabled) {
			t.Errorf("GenerateJWT with auth disabled: expected %v, got %v", auth.ErrAuthDisabled, err)
		}
		if _, err := auth.ValidateJWT("anything"); !errors.Is(err, auth.ErrAuthDisabled) {
			t.Errorf("ValidateJWT with auth disabled: expected %v, got %v", auth.ErrAuthDisabled, err)
		}
	})

	t.Run("ValidSecret", func(t *testing.T) {
		auth.Init(testSecret)

		if !auth.Enabled() {
			t.Fatal("Enabled() should be true once a secret is set")
		}
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)
	t.Cleanup(func() { auth.Init("") })

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. Expected: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. Expected: %s, got: %s", testRole, claims.Role)
		}
		if claims.ID == "" {
			t.Error("token should carry a unique id")
		}
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		a, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)
		b, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if a == b {
			t.Error("two tokens issued in a row should differ")
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should reject an expired token")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. Expected: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		auth.Init("chave-secreta-falsa-diferente")
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		auth.Init(testSecret)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should reject a token signed with another secret")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("wrong error for invalid signature: %v", err)
		}
	})

	t.Run("ForeignIssuer", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		})
		tokenStr, err := token.SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("signing failed: %v", err)
		}

		if _, err := auth.ValidateJWT(tokenStr); !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			t.Errorf("expected %v, got %v", jwt.ErrTokenInvalidIssuer, err)
		}
	})
}
