package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/sthandier/antiguedades-api/internal/model"
	"github.com/sthandier/antiguedades-api/internal/repository"
)

type stubEnvioStore struct {
	getAll  func(ctx context.Context) ([]model.Envio, error)
	getByID func(ctx context.Context, id uint64) (model.Envio, error)
	create  func(ctx context.Context, e model.Envio) (uint64, error)
	update  func(ctx context.Context, id uint64, e model.Envio) error
	delete  func(ctx context.Context, id uint64) error
}

func (s *stubEnvioStore) GetAll(ctx context.Context) ([]model.Envio, error) {
	return s.getAll(ctx)
}
func (s *stubEnvioStore) GetByID(ctx context.Context, id uint64) (model.Envio, error) {
	return s.getByID(ctx, id)
}
func (s *stubEnvioStore) Create(ctx context.Context, e model.Envio) (uint64, error) {
	return s.create(ctx, e)
}
func (s *stubEnvioStore) Update(ctx context.Context, id uint64, e model.Envio) error {
	return s.update(ctx, id, e)
}
func (s *stubEnvioStore) Delete(ctx context.Context, id uint64) error {
	return s.delete(ctx, id)
}

func TestEnvioCreate(t *testing.T) {
	h := NewEnvioHandler(&stubEnvioStore{
		create: func(_ context.Context, e model.Envio) (uint64, error) {
			if e.ReservaID != 4 || e.Direccion != "Calle Falsa 123" {
				t.Errorf("envío insertado = %+v", e)
			}
			return 11, nil
		},
	})
	body := `{"reserva_id":4,"estado":"pendiente","direccion":"Calle Falsa 123"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/envios", body)

	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, quería 201", rec.Code)
	}
	if got := decodeBody(t, rec)["id"]; got != float64(11) {
		t.Errorf("id = %v", got)
	}
}

func TestEnvioGetByID(t *testing.T) {
	direccion := "Av. Siempre Viva 742"
	h := NewEnvioHandler(&stubEnvioStore{
		getByID: func(_ context.Context, id uint64) (model.Envio, error) {
			return model.Envio{ID: id, ReservaID: 4, Estado: "en_transito", Direccion: direccion}, nil
		},
	})
	c, rec := newTestContext(t, http.MethodGet, "/api/envios/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := h.GetByID(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["id"] != float64(6) || body["direccion"] != direccion {
		t.Errorf("cuerpo = %v", body)
	}
}

func TestEnvioRemoveNoEncontrado(t *testing.T) {
	h := NewEnvioHandler(&stubEnvioStore{
		delete: func(context.Context, uint64) error { return repository.ErrNoEncontrado },
	})
	c, rec := newTestContext(t, http.MethodDelete, "/api/envios/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Remove(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "No se encontró el envío para eliminar." {
		t.Errorf("message = %q", got)
	}
}

func TestEnvioGetAllError(t *testing.T) {
	h := NewEnvioHandler(&stubEnvioStore{
		getAll: func(context.Context) ([]model.Envio, error) {
			return nil, context.DeadlineExceeded
		},
	})
	c, rec := newTestContext(t, http.MethodGet, "/api/envios", "")

	if err := h.GetAll(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, quería 500", rec.Code)
	}
	// the storage error never leaks to the client
	if got := decodeBody(t, rec)["error"]; got != "Error al obtener los envíos" {
		t.Errorf("error = %q", got)
	}
}
