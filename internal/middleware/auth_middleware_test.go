package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ngoPortal/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("42", "ngo", "Helping Hands")
	require.NoError(t, err)

	rec, c := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), c.Get("user_id"))
	assert.Equal(t, "ngo", c.Get("role"))
	assert.Equal(t, "Helping Hands", c.Get("name"))
	assert.Equal(t, token, c.Get("token"))
}

func TestAuthMiddlewareRejects(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("42", "user", "Asha")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-token",
		"tampered token": "Bearer " + token + "x",
	}

	for name, header := range cases {
		rec, _ := runAuth(t, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}
