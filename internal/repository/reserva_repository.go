package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// ReservaRepo encapsulates all database queries against the `reservas` table.
type ReservaRepo struct {
	db *sql.DB
}

// NewReservaRepo constructs a ReservaRepo with the provided DB handle.
func NewReservaRepo(db *sql.DB) *ReservaRepo {
	return &ReservaRepo{db: db}
}

const columnasReserva = "id, usuario_id, producto_id, fecha_reserva, cantidad, estado"

// GetAll returns every reservation ordered by id.
func (r *ReservaRepo) GetAll(ctx context.Context) ([]model.Reserva, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasReserva+" FROM reservas ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reserva
	for rows.Next() {
		var rv model.Reserva
		if err := rows.Scan(&rv.ID, &rv.UsuarioID, &rv.ProductoID,
			&rv.FechaReserva, &rv.Cantidad, &rv.Estado); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// GetByID fetches a reservation by id. Returns ErrNoEncontrado when no row matches.
func (r *ReservaRepo) GetByID(ctx context.Context, id uint64) (model.Reserva, error) {
	var rv model.Reserva
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasReserva+" FROM reservas WHERE id = ?", id).
		Scan(&rv.ID, &rv.UsuarioID, &rv.ProductoID, &rv.FechaReserva, &rv.Cantidad, &rv.Estado)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reserva{}, ErrNoEncontrado
	}
	return rv, err
}

// Create inserts a new reservation and returns its auto-generated id.
func (r *ReservaRepo) Create(ctx context.Context, rv model.Reserva) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reservas (usuario_id, producto_id, fecha_reserva, cantidad, estado) VALUES (?, ?, ?, ?, ?)",
		rv.UsuarioID, rv.ProductoID, rv.FechaReserva, rv.Cantidad, rv.Estado)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces the editable fields of the reservation identified by id.
func (r *ReservaRepo) Update(ctx context.Context, id uint64, rv model.Reserva) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE reservas SET usuario_id = ?, producto_id = ?, fecha_reserva = ?, cantidad = ?, estado = ? WHERE id = ?",
		rv.UsuarioID, rv.ProductoID, rv.FechaReserva, rv.Cantidad, rv.Estado, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the reservation identified by id.
func (r *ReservaRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reservas WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
