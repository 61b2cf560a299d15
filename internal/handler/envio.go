package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// EnvioStore is the slice of the envios repository the handler needs.
type EnvioStore interface {
	GetAll(ctx context.Context) ([]model.Envio, error)
	GetByID(ctx context.Context, id uint64) (model.Envio, error)
	Create(ctx context.Context, e model.Envio) (uint64, error)
	Update(ctx context.Context, id uint64, e model.Envio) error
	Delete(ctx context.Context, id uint64) error
}

// EnvioHandler exposes the envios CRUD.
type EnvioHandler struct {
	Envios EnvioStore
}

func NewEnvioHandler(e EnvioStore) *EnvioHandler {
	return &EnvioHandler{Envios: e}
}

// GetAll handles GET /api/envios.
func (h *EnvioHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	envios, err := h.Envios.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener los envíos: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener los envíos"})
	}
	if len(envios) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron envíos."})
	}
	return c.JSON(http.StatusOK, envios)
}

// GetByID handles GET /api/envios/:id.
func (h *EnvioHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	e, err := h.Envios.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el envío."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener el envío: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el envío"})
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /api/envios and echoes the new id.
func (h *EnvioHandler) Create(c echo.Context) error {
	var e model.Envio
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Envios.Create(ctx, e)
	if err != nil {
		c.Logger().Errorf("error al crear el envío: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear el envío"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update handles PUT /api/envios/:id.
func (h *EnvioHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var e model.Envio
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Envios.Update(ctx, id, e)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el envío para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el envío: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el envío"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Envío actualizado exitosamente."})
}

// Remove handles DELETE /api/envios/:id.
func (h *EnvioHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Envios.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el envío para eliminar."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar el envío: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el envío"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Envío eliminado exitosamente."})
}
