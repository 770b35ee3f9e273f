package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims jwt.MapClaims
	err    error
}

func (s stubVerifier) VerifyToken(string) (jwt.MapClaims, error) {
	return s.claims, s.err
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	handler := JWTAuth(stubVerifier{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthRejectsInvalidToken(t *testing.T) {
	handler := JWTAuth(stubVerifier{err: errors.New("bad signature")})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	request := httptest.NewRequest(http.MethodGet, "/customers", nil)
	request.Header.Set("Authorization", "Bearer bogus")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthStoresClaimsOnContext(t *testing.T) {
	wantClaims := jwt.MapClaims{"sub": "customer-1"}

	var ran bool
	handler := JWTAuth(stubVerifier{claims: wantClaims})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ran = true
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "customer-1", claims["sub"])
	}))

	request := httptest.NewRequest(http.MethodGet, "/customers", nil)
	request.Header.Set("Authorization", "Bearer valid-token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, ran)
}

func TestJWTAuthRejectsNonBearerHeader(t *testing.T) {
	handler := JWTAuth(stubVerifier{claims: jwt.MapClaims{}})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run with a basic auth header")
	}))

	request := httptest.NewRequest(http.MethodGet, "/customers", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
