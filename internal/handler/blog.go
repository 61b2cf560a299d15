package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// BlogStore is the slice of the blog repository the handler needs.
type BlogStore interface {
	GetAll(ctx context.Context) ([]model.EntradaBlog, error)
	GetByID(ctx context.Context, id uint64) (model.EntradaBlog, error)
	Create(ctx context.Context, b model.EntradaBlog) (uint64, error)
	Update(ctx context.Context, id uint64, b model.EntradaBlog) error
	Delete(ctx context.Context, id uint64) error
	Desactivar(ctx context.Context, id uint64, titulo string) error
}

// BlogHandler exposes the blog CRUD plus soft deactivation by id or titulo.
type BlogHandler struct {
	Blog BlogStore
}

func NewBlogHandler(b BlogStore) *BlogHandler {
	return &BlogHandler{Blog: b}
}

// GetAll handles GET /api/blog.
func (h *BlogHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	entradas, err := h.Blog.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener los blogs: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener los blogs"})
	}
	if len(entradas) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron entradas del blog."})
	}
	return c.JSON(http.StatusOK, entradas)
}

// GetByID handles GET /api/blog/:id.
func (h *BlogHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	b, err := h.Blog.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la entrada del blog."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener el blog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el blog"})
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /api/blog and echoes the new id.
func (h *BlogHandler) Create(c echo.Context) error {
	var b model.EntradaBlog
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Blog.Create(ctx, b)
	if err != nil {
		c.Logger().Errorf("error al crear el blog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear el blog"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update handles PUT /api/blog/:id.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}
	var b model.EntradaBlog
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Blog.Update(ctx, id, b)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la entrada del blog para actualizar."})
	}
	if err != nil {
		c.Logger().Errorf("error al actualizar el blog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el blog"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Entrada del blog actualizada exitosamente."})
}

// Remove handles DELETE /api/blog/:id.
func (h *BlogHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err = h.Blog.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la entrada del blog para eliminar."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar el blog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el blog"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Entrada del blog eliminada exitosamente."})
}

type desactivarBlogReq struct {
	ID     uint64 `json:"id"`
	Titulo string `json:"titulo"`
}

// Desactivar handles POST /api/blog/desactivar. The entry is selected by
// id when present, otherwise by titulo; providing neither is a
// validation error and storage is never touched. Unlike the usuarios
// flow there is no authorization check.
func (h *BlogHandler) Desactivar(c echo.Context) error {
	var req desactivarBlogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	if req.ID == 0 && req.Titulo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Se debe proporcionar un ID o un título para desactivar la entrada del blog.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Blog.Desactivar(ctx, req.ID, req.Titulo)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró la entrada del blog para desactivar."})
	}
	if err != nil {
		c.Logger().Errorf("error al desactivar la entrada del blog: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al desactivar la entrada del blog"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Entrada del blog desactivada exitosamente."})
}
