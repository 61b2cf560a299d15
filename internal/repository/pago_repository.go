package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// PagoRepo encapsulates all database queries against the `pagos` table.
type PagoRepo struct {
	db *sql.DB
}

// NewPagoRepo constructs a PagoRepo with the provided DB handle.
func NewPagoRepo(db *sql.DB) *PagoRepo {
	return &PagoRepo{db: db}
}

const columnasPago = "id, usuario_id, reserva_id, monto, fecha_pago, metodo_pago, comprobante"

// GetAll returns every payment ordered by id.
func (r *PagoRepo) GetAll(ctx context.Context) ([]model.Pago, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasPago+" FROM pagos ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Pago
	for rows.Next() {
		var p model.Pago
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.ReservaID, &p.Monto,
			&p.FechaPago, &p.MetodoPago, &p.Comprobante); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a payment by id. Returns ErrNoEncontrado when no row matches.
func (r *PagoRepo) GetByID(ctx context.Context, id uint64) (model.Pago, error) {
	var p model.Pago
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasPago+" FROM pagos WHERE id = ?", id).
		Scan(&p.ID, &p.UsuarioID, &p.ReservaID, &p.Monto, &p.FechaPago, &p.MetodoPago, &p.Comprobante)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Pago{}, ErrNoEncontrado
	}
	return p, err
}

// Create inserts a new payment and returns its auto-generated id.
func (r *PagoRepo) Create(ctx context.Context, p model.Pago) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO pagos (usuario_id, reserva_id, monto, fecha_pago, metodo_pago, comprobante) VALUES (?, ?, ?, ?, ?, ?)",
		p.UsuarioID, p.ReservaID, p.Monto, p.FechaPago, p.MetodoPago, p.Comprobante)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces the editable fields of the payment identified by id.
func (r *PagoRepo) Update(ctx context.Context, id uint64, p model.Pago) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE pagos SET usuario_id = ?, reserva_id = ?, monto = ?, fecha_pago = ?, metodo_pago = ?, comprobante = ? WHERE id = ?",
		p.UsuarioID, p.ReservaID, p.Monto, p.FechaPago, p.MetodoPago, p.Comprobante, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the payment identified by id.
func (r *PagoRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM pagos WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
