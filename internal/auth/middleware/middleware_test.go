package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authctx "github.com/personalweb/portfolio-backend/internal/auth"
)

type stubVerifier map[string]*auth.Token

func (s stubVerifier) VerifyIDToken(_ context.Context, token string) (*auth.Token, error) {
	if t, ok := s[token]; ok {
		return t, nil
	}
	return nil, errors.New("bad token")
}

func serve(h gin.HandlerFunc, header, value string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", h, func(c *gin.Context) {
		c.String(http.StatusOK, authctx.AdminUID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyMiddleware(t *testing.T) {
	h := APIKeyMiddleware("s3cret")

	assert.Equal(t, http.StatusUnauthorized, serve(h, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "X-API-Key", "wrong").Code)
	assert.Equal(t, http.StatusOK, serve(h, "X-API-Key", "s3cret").Code)
}

func TestFirebaseAuthMiddleware(t *testing.T) {
	h := FirebaseAuthMiddleware(stubVerifier{
		"good": {UID: "owner-1", Claims: map[string]interface{}{"email": "me@example.com"}},
	})

	assert.Equal(t, http.StatusUnauthorized, serve(h, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Authorization", "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Authorization", "good").Code)

	w := serve(h, "Authorization", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner-1", w.Body.String())
}
