package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

// UsuarioStore is the slice of the usuarios repository the handler needs.
type UsuarioStore interface {
	GetAll(ctx context.Context) ([]model.Usuario, error)
	GetByID(ctx context.Context, id uint64) (model.Usuario, error)
	GetByCredentials(ctx context.Context, email, password string) (model.Usuario, error)
	Create(ctx context.Context, u model.Usuario) error
	Update(ctx context.Context, email string, u model.Usuario) error
	Delete(ctx context.Context, email string) error
	UpdateEstado(ctx context.Context, email, estado string) error
}

// UsuarioHandler exposes the usuarios CRUD plus the privileged
// deactivation flow, the only role-gated mutation in the API.
type UsuarioHandler struct {
	Usuarios UsuarioStore
}

func NewUsuarioHandler(u UsuarioStore) *UsuarioHandler {
	return &UsuarioHandler{Usuarios: u}
}

// GetAll handles GET /api/usuarios.
func (h *UsuarioHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	usuarios, err := h.Usuarios.GetAll(ctx)
	if err != nil {
		c.Logger().Errorf("error al obtener los usuarios: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener los usuarios"})
	}
	if len(usuarios) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron usuarios."})
	}
	return c.JSON(http.StatusOK, usuarios)
}

// GetByID handles GET /api/usuarios/:id.
func (h *UsuarioHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Usuarios.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontraron usuarios."})
	}
	if err != nil {
		c.Logger().Errorf("error al obtener el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener el usuario"})
	}
	return c.JSON(http.StatusOK, u)
}

// Create handles POST /api/usuarios. A duplicate email keeps the legacy
// contract: 201 with an error payload and no second row.
func (h *UsuarioHandler) Create(c echo.Context) error {
	var u model.Usuario
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Usuarios.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicado) {
		return c.JSON(http.StatusCreated, echo.Map{"error": "El correo electrónico ya está registrado."})
	}
	if err != nil {
		c.Logger().Errorf("error al crear el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al crear el usuario"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Usuario creado exitosamente."})
}

type actualizarUsuarioReq struct {
	model.Usuario
	EmailNuevo string `json:"email_nuevo"`
}

// Update handles PUT /api/usuarios/:email. The path email identifies the
// row; an optional email_nuevo in the body moves the account to a new
// address.
func (h *UsuarioHandler) Update(c echo.Context) error {
	email := c.Param("email")

	var req actualizarUsuarioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	u := req.Usuario
	if req.EmailNuevo != "" {
		u.Email = req.EmailNuevo
	} else {
		u.Email = email
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Usuarios.Update(ctx, email, u)
	switch {
	case errors.Is(err, repository.ErrNoEncontrado):
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el usuario para actualizar."})
	case errors.Is(err, repository.ErrDuplicado):
		return c.JSON(http.StatusOK, echo.Map{"error": "El correo electrónico ya está registrado."})
	case err != nil:
		c.Logger().Errorf("error al actualizar el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al actualizar el usuario"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Usuario actualizado exitosamente."})
}

// Remove handles DELETE /api/usuarios/:email.
func (h *UsuarioHandler) Remove(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Usuarios.Delete(ctx, email)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusOK, echo.Map{"message": "No se encontró el usuario."})
	}
	if err != nil {
		c.Logger().Errorf("error al eliminar el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el usuario"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Usuario eliminado exitosamente."})
}

type desactivarUsuarioReq struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	EmailModificar string `json:"email_modificar"`
	Estado         string `json:"estado"`
}

// Desactivar handles POST /api/usuarios/desactivar. Every call re-proves
// identity and privilege: the acting user is looked up by email+password,
// must be an active admin, and only then is the target's estado written.
// The check and the write are two independent statements; the window
// between them is a known gap inherited from the legacy system.
func (h *UsuarioHandler) Desactivar(c echo.Context) error {
	var req desactivarUsuarioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	actor, err := h.Usuarios.GetByCredentials(ctx, req.Email, req.Password)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Usuario no encontrado o credenciales incorrectas."})
	}
	if err != nil {
		c.Logger().Errorf("error al desactivar el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al desactivar el usuario"})
	}
	if actor.Rol != "admin" || actor.Estado != "Activo" {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Usuario no es administrador/a activo o no tiene permisos."})
	}

	err = h.Usuarios.UpdateEstado(ctx, req.EmailModificar, req.Estado)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No se encontró el usuario."})
	}
	if err != nil {
		c.Logger().Errorf("error al desactivar el usuario: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al desactivar el usuario"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Usuario %s actualizado exitosamente.", req.EmailModificar),
	})
}
