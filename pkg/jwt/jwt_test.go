package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/stock-control-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "stock-control-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "jperez", "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "jperez", username)
	assert.Equal(t, "admin", role)
}

func TestGenerate_SecretVacio_Falla(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "u", "user", testIssuer, 60)
	assert.Error(t, err, "sin secret no debe emitirse token")
}

func TestParse_FirmaIncorrecta_Falla(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "maria", "user", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-distinto", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado_Falla(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	tok, err := pkgjwt.Generate(testSecret, 7, "maria", "user", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestParse_TokenMalformado_Falla(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}
