package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
	"github.com/ahmedhedefa/cashier-ca-web/internal/handlers"
	"github.com/ahmedhedefa/cashier-ca-web/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "cashier-test"
)

func testConfig() *config.Config {
	return &config.Config{
		IsProduction: true, // keeps swagger routes out of the test router
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testJWTIssuer,
		RateLimit:    "1000-S",
	}
}

// newTestRouter wires the real route table around the given services.
func newTestRouter(t *testing.T, services *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, testConfig(), services))
	return r
}

// generateTestToken creates an operator JWT for testing.
func generateTestToken(t *testing.T, operatorID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    testJWTIssuer,
		Subject:   operatorID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// doRequest sends a JSON request through the router. An empty token sends no
// Authorization header.
func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &portssvc.ServiceContainer{Change: new(MockChangeService), Till: new(MockTillService)})

	w := doRequest(t, r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
