package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/trivia-api/internal/auth"
	"github.com/saulo-duarte/trivia-api/internal/testutil"
)

func protected() (http.Handler, *string) {
	var userID string
	return auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
			userID = claims.UserID
		}
		w.WriteHeader(http.StatusNoContent)
	})), &userID
}

func TestAuthMiddleware(t *testing.T) {
	t.Cleanup(func() { auth.Init("") })

	t.Run("DisabledPassesThrough", func(t *testing.T) {
		auth.Init("")
		h, userID := protected()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/questions/1", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, *userID)
	})

	t.Run("MissingToken", func(t *testing.T) {
		auth.Init(testSecret)
		h, _ := protected()

		rec := testutil.Do(t, h, http.MethodDelete, "/questions/1", nil)
		testutil.AssertErrorEnvelope(t, rec, http.StatusUnauthorized)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		auth.Init(testSecret)
		h, _ := protected()

		rec := testutil.Do(t, h, http.MethodDelete, "/questions/1", nil, http.Header{
			"Authorization": []string{"Bearer not-a-jwt"},
		})
		testutil.AssertErrorEnvelope(t, rec, http.StatusUnauthorized)
	})

	t.Run("ValidTokenExposesClaims", func(t *testing.T) {
		auth.Init(testSecret)
		h, userID := protected()

		token, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		require.NoError(t, err)

		rec := testutil.Do(t, h, http.MethodDelete, "/questions/1", nil, http.Header{
			"Authorization": []string{"Bearer " + token},
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, testUserID, *userID)
	})
}

func TestGetUserClaimsFromContextWithoutClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := auth.GetUserClaimsFromContext(req.Context())
	assert.ErrorIs(t, err, auth.ErrNoClaims)
}
