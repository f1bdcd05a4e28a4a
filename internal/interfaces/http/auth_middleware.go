package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
	"github.com/tu-usuario/stock-control-api/pkg/jwt"
)

const (
	localUserID   = "user_id"
	localUsername = "username"
	localRole     = "role"
)

// AuthMiddleware valida el token Bearer y verifica que el usuario siga
// existiendo antes de dejar pasar la petición.
func AuthMiddleware(secret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fail(c, fiber.StatusUnauthorized, "Token de autenticación requerido")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "Formato de token inválido")
		}

		userID, username, role, err := jwt.Parse(secret, parts[1])
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return fail(c, fiber.StatusUnauthorized, "Usuario no encontrado")
		}

		c.Locals(localUserID, userID)
		c.Locals(localUsername, username)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole exige que el usuario autenticado tenga alguno de los roles dados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "No tienes permisos para realizar esta acción")
	}
}

// GetUserID devuelve el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localUserID).(int64)
	return id
}

// GetUsername devuelve el nombre del usuario autenticado.
func GetUsername(c *fiber.Ctx) string {
	name, _ := c.Locals(localUsername).(string)
	return name
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
