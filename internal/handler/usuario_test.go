package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

type stubUsuarioStore struct {
	getAll           func(ctx context.Context) ([]model.Usuario, error)
	getByID          func(ctx context.Context, id uint64) (model.Usuario, error)
	getByCredentials func(ctx context.Context, email, password string) (model.Usuario, error)
	create           func(ctx context.Context, u model.Usuario) error
	update           func(ctx context.Context, email string, u model.Usuario) error
	delete           func(ctx context.Context, email string) error
	updateEstado     func(ctx context.Context, email, estado string) error
}

func (s *stubUsuarioStore) GetAll(ctx context.Context) ([]model.Usuario, error) {
	return s.getAll(ctx)
}
func (s *stubUsuarioStore) GetByID(ctx context.Context, id uint64) (model.Usuario, error) {
	return s.getByID(ctx, id)
}
func (s *stubUsuarioStore) GetByCredentials(ctx context.Context, email, password string) (model.Usuario, error) {
	return s.getByCredentials(ctx, email, password)
}
func (s *stubUsuarioStore) Create(ctx context.Context, u model.Usuario) error {
	return s.create(ctx, u)
}
func (s *stubUsuarioStore) Update(ctx context.Context, email string, u model.Usuario) error {
	return s.update(ctx, email, u)
}
func (s *stubUsuarioStore) Delete(ctx context.Context, email string) error {
	return s.delete(ctx, email)
}
func (s *stubUsuarioStore) UpdateEstado(ctx context.Context, email, estado string) error {
	return s.updateEstado(ctx, email, estado)
}

func TestUsuarioGetAllVacio(t *testing.T) {
	h := NewUsuarioHandler(&stubUsuarioStore{
		getAll: func(context.Context) ([]model.Usuario, error) { return nil, nil },
	})
	c, rec := newTestContext(t, http.MethodGet, "/api/usuarios", "")

	if err := h.GetAll(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "No se encontraron usuarios." {
		t.Errorf("message = %q", got)
	}
}

func TestUsuarioCreate(t *testing.T) {
	var creado model.Usuario
	h := NewUsuarioHandler(&stubUsuarioStore{
		create: func(_ context.Context, u model.Usuario) error { creado = u; return nil },
	})
	body := `{"nombre":"Juan","apellido":"Perez","email":"juan@x.com","password":"p","rol":"cliente","telefono":"1","direccion":"a"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios", body)

	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, quería 201", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuario creado exitosamente." {
		t.Errorf("message = %q", got)
	}
	if creado.Email != "juan@x.com" || creado.Rol != "cliente" {
		t.Errorf("usuario insertado = %+v", creado)
	}
}

func TestUsuarioCreateDuplicado(t *testing.T) {
	llamadas := 0
	h := NewUsuarioHandler(&stubUsuarioStore{
		create: func(context.Context, model.Usuario) error {
			llamadas++
			return repository.ErrDuplicado
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios", `{"email":"juan@x.com"}`)

	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, quería 201", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "El correo electrónico ya está registrado." {
		t.Errorf("error = %q", got)
	}
	if llamadas != 1 {
		t.Errorf("create llamado %d veces", llamadas)
	}
}

func TestUsuarioUpdateDuplicado(t *testing.T) {
	h := NewUsuarioHandler(&stubUsuarioStore{
		update: func(context.Context, string, model.Usuario) error {
			return repository.ErrDuplicado
		},
	})
	body := `{"nombre":"Juan","email_nuevo":"ocupado@x.com"}`
	c, rec := newTestContext(t, http.MethodPut, "/api/usuarios/juan@x.com", body)
	c.SetParamNames("email")
	c.SetParamValues("juan@x.com")

	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}
	// moving to a taken email is a business outcome, not a server fault
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "El correo electrónico ya está registrado." {
		t.Errorf("error = %q", got)
	}
}

func TestUsuarioRemoveNoEncontrado(t *testing.T) {
	h := NewUsuarioHandler(&stubUsuarioStore{
		delete: func(context.Context, string) error { return repository.ErrNoEncontrado },
	})
	c, rec := newTestContext(t, http.MethodDelete, "/api/usuarios/nadie@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("nadie@x.com")

	if err := h.Remove(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "No se encontró el usuario." {
		t.Errorf("message = %q", got)
	}
}

func desactivarBody() string {
	return `{"email":"admin@x.com","password":"secreta","email_modificar":"ana@x.com","estado":"Inactivo"}`
}

func TestDesactivarCredencialesIncorrectas(t *testing.T) {
	mutado := false
	h := NewUsuarioHandler(&stubUsuarioStore{
		getByCredentials: func(context.Context, string, string) (model.Usuario, error) {
			return model.Usuario{}, repository.ErrNoEncontrado
		},
		updateEstado: func(context.Context, string, string) error { mutado = true; return nil },
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/desactivar", desactivarBody())

	if err := h.Desactivar(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quería 404", rec.Code)
	}
	if mutado {
		t.Error("el estado del objetivo fue modificado sin autenticación")
	}
}

func TestDesactivarNoAdmin(t *testing.T) {
	mutado := false
	h := NewUsuarioHandler(&stubUsuarioStore{
		getByCredentials: func(context.Context, string, string) (model.Usuario, error) {
			return model.Usuario{Rol: "cliente", Estado: "Activo"}, nil
		},
		updateEstado: func(context.Context, string, string) error { mutado = true; return nil },
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/desactivar", desactivarBody())

	if err := h.Desactivar(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, quería 403", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuario no es administrador/a activo o no tiene permisos." {
		t.Errorf("message = %q", got)
	}
	if mutado {
		t.Error("el estado del objetivo fue modificado por un no-admin")
	}
}

func TestDesactivarAdminInactivo(t *testing.T) {
	mutado := false
	h := NewUsuarioHandler(&stubUsuarioStore{
		getByCredentials: func(context.Context, string, string) (model.Usuario, error) {
			return model.Usuario{Rol: "admin", Estado: "Inactivo"}, nil
		},
		updateEstado: func(context.Context, string, string) error { mutado = true; return nil },
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/desactivar", desactivarBody())

	if err := h.Desactivar(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, quería 403", rec.Code)
	}
	if mutado {
		t.Error("el estado del objetivo fue modificado por un admin inactivo")
	}
}

func TestDesactivarExito(t *testing.T) {
	var gotEmail, gotEstado string
	h := NewUsuarioHandler(&stubUsuarioStore{
		getByCredentials: func(_ context.Context, email, password string) (model.Usuario, error) {
			if email != "admin@x.com" || password != "secreta" {
				t.Errorf("credenciales = %q/%q", email, password)
			}
			return model.Usuario{Rol: "admin", Estado: "Activo"}, nil
		},
		updateEstado: func(_ context.Context, email, estado string) error {
			gotEmail, gotEstado = email, estado
			return nil
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/desactivar", desactivarBody())

	if err := h.Desactivar(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if gotEmail != "ana@x.com" || gotEstado != "Inactivo" {
		t.Errorf("update aplicado a %q con estado %q", gotEmail, gotEstado)
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuario ana@x.com actualizado exitosamente." {
		t.Errorf("message = %q", got)
	}
}

func TestDesactivarObjetivoNoExiste(t *testing.T) {
	h := NewUsuarioHandler(&stubUsuarioStore{
		getByCredentials: func(context.Context, string, string) (model.Usuario, error) {
			return model.Usuario{Rol: "admin", Estado: "Activo"}, nil
		},
		updateEstado: func(context.Context, string, string) error {
			return repository.ErrNoEncontrado
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/usuarios/desactivar", desactivarBody())

	if err := h.Desactivar(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quería 404", rec.Code)
	}
}
