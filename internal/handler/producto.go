package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// ProductoStore is the slice of the productos repository the handler needs.
type ProductoStore interface {
	GetAll(ctx context.Context) ([]model.Producto, error)
	GetByID(ctx context.Context, id uint64) (model.Producto, error)
	GetByReservaID(ctx context.Context, reservaID uint64) ([]model.Producto, error)
	Create(ctx context.Context, p model.Producto) (uint64, error)
	Update(ctx context.Context, id uint64, p model.Producto) error
	UpdateStock(ctx context.Context, id uint64, cantidad int) error
	UpdateEstado(ctx context.Context, id uint64, estado *string) error
	Delete(ctx context.Context, id uint64) error
}

// ProductoHandler exposes the productos CRUD plus the stock and
// reservation-state overwrites and the lookup by reservation.
type ProductoHandler struct {
	Productos ProductoStore
}

func NewProductoHandler(p ProductoStore) *ProductoHandler {
	return &ProductoHandler{Productos: p}
}

// GetAll handles GET /api/productos.
func (h *ProductoHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	productos, err := h.Productos.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener los productos: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener los productos"})
	}
	if len(productos) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron Productos."})
	}
	return c.JSON(http.StatusOK, productos)
}

// GetByID handles GET /api/productos/:id.
func (h *ProductoHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Productos.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron Productos."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener el producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el producto"})
	}
	return c.JSON(http.StatusOK, p)
}

// GetByReservaID handles GET /api/productos/reserva/:reservaId.
func (h *ProductoHandler) GetByReservaID(c echo.Context) error {
	reservaID, err := parseID(c, "reservaId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id de reserva inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	productos, err := h.Productos.GetByReservaID(ctx, reservaID)
	if err != nil {
		c.Logger().Errorf("error al obtener el producto por ID de reserva: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el producto por ID de reserva"})
	}
	if len(productos) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron productos para esta reserva."})
	}
	return c.JSON(http.StatusOK, productos)
}

// Create handles POST /api/productos. Echoes the new id; a duplicate
// name keeps the legacy contract of 201 with an error payload.
func (h *ProductoHandler) Create(c echo.Context) error {
	var p model.Producto
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Productos.Create(ctx, p)
	if errors.Is(err, repository.ErrDuplicado) {
		return c.JSON(http.StatusCreated, echo.Map{"error": "El nombre del producto ya está registrado."})
	}
	if err != nil {
		c.Logger().Errorf("error al crear el producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear el producto"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update handles PUT /api/productos/:id.
func (h *ProductoHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var p model.Producto
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Productos.Update(ctx, id, p)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el producto para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el producto"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Producto actualizado exitosamente."})
}

type actualizarStockReq struct {
	Cantidad int `json:"cantidad"`
}

// UpdateStock handles PUT /api/productos/:id/stock. The quantity is
// overwritten as-is, with no bounds check.
func (h *ProductoHandler) UpdateStock(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var req actualizarStockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Productos.UpdateStock(ctx, id, req.Cantidad)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el producto para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el stock del producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el stock del producto"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cantidad de productos actualizada exitosamente."})
}

type actualizarEstadoReq struct {
	EstadoReserva *string `json:"estado_reserva"`
}

// UpdateEstado handles PUT /api/productos/:id/estado. A null
// estado_reserva clears the column.
func (h *ProductoHandler) UpdateEstado(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var req actualizarEstadoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Productos.UpdateEstado(ctx, id, req.EstadoReserva)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el producto para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el estado de reserva del producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el estado de reserva del producto"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Estado de reserva actualizado exitosamente."})
}

// Remove handles DELETE /api/productos/:id.
func (h *ProductoHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Productos.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el producto para eliminar."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar el producto: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el producto"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Producto eliminado exitosamente."})
}
