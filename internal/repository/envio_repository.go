package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// EnvioRepo encapsulates all database queries against the `envios` table.
type EnvioRepo struct {
	db *sql.DB
}

// NewEnvioRepo constructs an EnvioRepo with the provided DB handle.
func NewEnvioRepo(db *sql.DB) *EnvioRepo {
	return &EnvioRepo{db: db}
}

const columnasEnvio = "id, reserva_id, fecha_despacho, estado, direccion"

// GetAll returns every shipment ordered by id.
func (r *EnvioRepo) GetAll(ctx context.Context) ([]model.Envio, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasEnvio+" FROM envios ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Envio
	for rows.Next() {
		var e model.Envio
		if err := rows.Scan(&e.ID, &e.ReservaID, &e.FechaDespacho, &e.Estado, &e.Direccion); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches a shipment by id. Returns ErrNoEncontrado when no row matches.
func (r *EnvioRepo) GetByID(ctx context.Context, id uint64) (model.Envio, error) {
	var e model.Envio
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasEnvio+" FROM envios WHERE id = ?", id).
		Scan(&e.ID, &e.ReservaID, &e.FechaDespacho, &e.Estado, &e.Direccion)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Envio{}, ErrNoEncontrado
	}
	return e, err
}

// Create inserts a new shipment and returns its auto-generated id.
func (r *EnvioRepo) Create(ctx context.Context, e model.Envio) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO envios (reserva_id, fecha_despacho, estado, direccion) VALUES (?, ?, ?, ?)",
		e.ReservaID, e.FechaDespacho, e.Estado, e.Direccion)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces the editable fields of the shipment identified by id.
func (r *EnvioRepo) Update(ctx context.Context, id uint64, e model.Envio) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE envios SET reserva_id = ?, fecha_despacho = ?, estado = ?, direccion = ? WHERE id = ?",
		e.ReservaID, e.FechaDespacho, e.Estado, e.Direccion, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the shipment identified by id.
func (r *EnvioRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM envios WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
