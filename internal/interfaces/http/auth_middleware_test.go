package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/stock-control-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/stock-control-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "stock-control-test"
	testExpMin    = 60
)

// fakeUserRepo implementa repository.UserRepository sobre un mapa en memoria.
type fakeUserRepo struct {
	users map[int64]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[int64]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

// buildTestApp monta una ruta protegida con AuthMiddleware y, si se indican
// roles, también RequireRole.
func buildTestApp(repo *fakeUserRepo, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, repo)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, userID int64, username, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, username, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido_CargaLocals(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: 1, Username: "jperez", Role: "user"})
	app := buildTestApp(repo)

	resp := doRequest(t, app, tokenFor(t, 1, "jperez", "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["user_id"])
	assert.Equal(t, "jperez", body["username"])
	assert.Equal(t, "user", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: 1, Username: "jperez", Role: "user"})
	app := buildTestApp(repo)

	tok, err := pkgjwt.Generate(testJWTSecret, 1, "jperez", "user", testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecret_Retorna401(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: 1, Username: "jperez", Role: "user"})
	app := buildTestApp(repo)

	tok, err := pkgjwt.Generate("otro-secret", 1, "jperez", "user", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token válido de un usuario que ya no existe en la base no debe pasar.
func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo()) // repo vacío

	resp := doRequest(t, app, tokenFor(t, 99, "fantasma", "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: 1, Username: "admin", Role: "admin"})
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, tokenFor(t, 1, "admin", "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

func TestRequireRole_UserBloqueado_Retorna403(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: 2, Username: "jperez", Role: "user"})
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, tokenFor(t, 2, "jperez", "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"user no debe poder acceder a ruta restringida a admin")
}
