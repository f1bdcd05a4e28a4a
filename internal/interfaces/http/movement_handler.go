package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control-api/internal/application/analytics"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP para el libro de movimientos.
type MovementHandler struct {
	uc        *inventory.RegisterMovementUseCase
	dashboard *analytics.DashboardUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase, dashboard *analytics.DashboardUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, dashboard: dashboard}
}

// Create godoc
// @Summary      Registrar un movimiento de entrada o salida
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Movimiento registrado exitosamente", out)
}

// List godoc
// @Summary      Listar movimientos con filtros y paginación
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        page           query  int     false  "Página (por defecto 1)"
// @Param        limit          query  int     false  "Tamaño de página (máx 100)"
// @Param        product_id     query  int     false  "Filtrar por producto"
// @Param        movement_type  query  string  false  "entry o exit"
// @Param        start_date     query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end_date       query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {object}  dto.Response
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	out, err := h.uc.ListMovements(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del movimiento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        productId  path   int  true   "ID del producto"
// @Param        page       query  int  false  "Página"
// @Param        limit      query  int  false  "Tamaño de página (por defecto 10)"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/movements/product/{productId} [get]
func (h *MovementHandler) ByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	out, err := h.uc.ListByProduct(c.Context(), productID, page)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// Stats godoc
// @Summary      Estadísticas de movimientos por periodo
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        period  query  int  false  "Días hacia atrás (por defecto 30, máx 365)"
// @Success      200  {object}  dto.Response
// @Router       /api/movements/stats [get]
func (h *MovementHandler) Stats(c *fiber.Ctx) error {
	period, _ := strconv.Atoi(c.Query("period"))
	out, err := h.dashboard.MovementStats(c.Context(), period)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// Dashboard godoc
// @Summary      Resumen del día, la semana y últimos movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/movements/dashboard [get]
func (h *MovementHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.DashboardSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}
