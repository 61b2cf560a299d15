package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// PagoStore is the slice of the pagos repository the handler needs.
type PagoStore interface {
	GetAll(ctx context.Context) ([]model.Pago, error)
	GetByID(ctx context.Context, id uint64) (model.Pago, error)
	Create(ctx context.Context, p model.Pago) (uint64, error)
	Update(ctx context.Context, id uint64, p model.Pago) error
	Delete(ctx context.Context, id uint64) error
}

// PagoHandler exposes the pagos CRUD.
type PagoHandler struct {
	Pagos PagoStore
}

func NewPagoHandler(p PagoStore) *PagoHandler {
	return &PagoHandler{Pagos: p}
}

// GetAll handles GET /api/pagos.
func (h *PagoHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	pagos, err := h.Pagos.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener los pagos: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener los pagos"})
	}
	if len(pagos) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron pagos."})
	}
	return c.JSON(http.StatusOK, pagos)
}

// GetByID handles GET /api/pagos/:id.
func (h *PagoHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Pagos.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el pago."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener el pago: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el pago"})
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/pagos and echoes the new id.
func (h *PagoHandler) Create(c echo.Context) error {
	var p model.Pago
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Pagos.Create(ctx, p)
	if err != nil {
		c.Logger().Errorf("error al crear el pago: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear el pago"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update handles PUT /api/pagos/:id.
func (h *PagoHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var p model.Pago
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Pagos.Update(ctx, id, p)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el pago para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el pago: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el pago"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pago actualizado exitosamente."})
}

// Remove handles DELETE /api/pagos/:id.
func (h *PagoHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Pagos.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el pago para eliminar."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar el pago: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el pago"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pago eliminado exitosamente."})
}
