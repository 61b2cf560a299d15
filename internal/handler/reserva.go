package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/queue"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// ReservaStore is the slice of the reservas repository the handler needs.
type ReservaStore interface {
	GetAll(ctx context.Context) ([]model.Reserva, error)
	GetByID(ctx context.Context, id uint64) (model.Reserva, error)
	Create(ctx context.Context, rv model.Reserva) (uint64, error)
	Update(ctx context.Context, id uint64, rv model.Reserva) error
	Delete(ctx context.Context, id uint64) error
}

// ReservaHandler exposes the reservas CRUD. After a successful insert it
// publishes a reserva.creada event through Publicar; a nil Publicar
// disables publishing, and publish failures never fail the request.
type ReservaHandler struct {
	Reservas ReservaStore
	Publicar func(ctx context.Context, event queue.ReservaCreadaEvent) error
}

func NewReservaHandler(r ReservaStore, publicar func(context.Context, queue.ReservaCreadaEvent) error) *ReservaHandler {
	return &ReservaHandler{Reservas: r, Publicar: publicar}
}

// GetAll handles GET /api/reservas.
func (h *ReservaHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reservas, err := h.Reservas.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener las reservas: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener las reservas"})
	}
	if len(reservas) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron reservas."})
	}
	return c.JSON(http.StatusOK, reservas)
}

// GetByID handles GET /api/reservas/:id.
func (h *ReservaHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rv, err := h.Reservas.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron reservas."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener la reserva: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener la reserva"})
	}
	return c.JSON(http.StatusOK, rv)
}

// Create handles POST /api/reservas and echoes the new id.
func (h *ReservaHandler) Create(c echo.Context) error {
	var rv model.Reserva
	if err := c.Bind(&rv); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Reservas.Create(ctx, rv)
	if err != nil {
		c.Logger().Errorf("error al crear la reserva: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear la reserva"})
	}

	if h.Publicar != nil {
		event := queue.ReservaCreadaEvent{
			ReservaID:  id,
			UsuarioID:  rv.UsuarioID,
			ProductoID: rv.ProductoID,
			Cantidad:   rv.Cantidad,
			Estado:     rv.Estado,
			CreadaEn:   time.Now().UTC().Format(time.RFC3339),
		}
		if rv.FechaReserva != nil {
			event.FechaReserva = *rv.FechaReserva
		}
		// Best effort; the publisher logs its own failures.
		_ = h.Publicar(c.Request().Context(), event)
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update handles PUT /api/reservas/:id.
func (h *ReservaHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var rv model.Reserva
	if err := c.Bind(&rv); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Reservas.Update(ctx, id, rv)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la reserva para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar la reserva: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar la reserva"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reserva actualizada exitosamente."})
}

// Remove handles DELETE /api/reservas/:id.
func (h *ReservaHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Reservas.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la reserva para eliminar."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar la reserva: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar la reserva"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reserva eliminada exitosamente."})
}
