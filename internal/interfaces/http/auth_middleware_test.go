package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/obratrack-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/obratrack-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testEmail     = "laura.gomez@obratrack.test"
	testIssuer    = "obratrack-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve la identidad cargada en locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"userId": apphttp.GetUserID(c),
				"email":  apphttp.GetEmail(c),
				"role":   apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err, "la request de prueba no debe fallar")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, tokenForRole(t, "Site Supervisor"))

	assert.Equal(t, http.StatusOK, resp.StatusCode, "un token válido debe pasar el middleware")
	assert.Equal(t, float64(testUserID), body["userId"], "el userId debe venir de los claims")
	assert.Equal(t, testEmail, body["email"], "el email debe venir de los claims")
	assert.Equal(t, "Site Supervisor", body["role"], "el rol debe venir de los claims")
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"], "sin Authorization header debe ser MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"], "un esquema distinto a Bearer debe rechazarse")
}

func TestAuthMiddleware_TokenConFirmaIncorrecta(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, testEmail, "Admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"], "un token firmado con otro secret debe rechazarse")
}

func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "Bearer   ")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"], "Bearer sin token debe rechazarse")
}
