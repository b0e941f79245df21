package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := Generate(testSecret, 42, "pm@obra.co", "Project Manager", "obratrack", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "pm@obra.co", claims.Email)
	assert.Equal(t, "Project Manager", claims.Role)
	assert.Equal(t, "obratrack", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate(testSecret, 1, "x@obra.co", "Admin", "obratrack", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.Error(t, err, "un token firmado con otro secreto debe rechazarse")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 1, "x@obra.co", "Admin", "obratrack", 60)
	assert.Error(t, err)
}
