package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control-api/internal/application/analytics"
	"github.com/tu-usuario/stock-control-api/internal/application/auth"
	"github.com/tu-usuario/stock-control-api/internal/application/inventory"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// RouterDeps dependencias para montar las rutas.
type RouterDeps struct {
	JWTSecret  string
	Users      repository.UserRepository
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.RegisterMovementUseCase
	Dashboard  *analytics.DashboardUseCase
}

// RegisterRoutes monta todas las rutas bajo /api.
// Las eliminaciones requieren rol admin; el resto solo autenticación.
func RegisterRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.MovementUC, deps.Dashboard)

	protected := AuthMiddleware(deps.JWTSecret, deps.Users)
	adminOnly := RequireRole("admin")

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, "API funcionando correctamente", fiber.Map{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", protected, authHandler.Verify)
	authGroup.Put("/change-password", protected, authHandler.ChangePassword)

	categories := api.Group("/categories", protected)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Las rutas fijas van antes que /:id para que Fiber no las capture como parámetro.
	products := api.Group("/products", protected)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/stats", productHandler.Stats)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	movements := api.Group("/movements", protected)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/dashboard", movementHandler.Dashboard)
	movements.Get("/stats", movementHandler.Stats)
	movements.Get("/product/:productId", movementHandler.ByProduct)
	movements.Get("/:id", movementHandler.GetByID)
}
