package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// ProductoRepo encapsulates all database queries against the `productos`
// table, including the stock and reservation-state overwrites that only
// administrators should reach.
type ProductoRepo struct {
	db *sql.DB
}

// NewProductoRepo constructs a ProductoRepo with the provided DB handle.
func NewProductoRepo(db *sql.DB) *ProductoRepo {
	return &ProductoRepo{db: db}
}

const columnasProducto = "id, nombre, descripcion, precio, cantidad, estado_reserva, fecha_creacion, reserva_id"

func escanearProducto(sc interface{ Scan(...any) error }, p *model.Producto) error {
	return sc.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Cantidad,
		&p.EstadoReserva, &p.FechaCreacion, &p.ReservaID)
}

// GetAll returns every product ordered by id.
func (r *ProductoRepo) GetAll(ctx context.Context) ([]model.Producto, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasProducto+" FROM productos ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Producto
	for rows.Next() {
		var p model.Producto
		if err := escanearProducto(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a product by id. Returns ErrNoEncontrado when no row matches.
func (r *ProductoRepo) GetByID(ctx context.Context, id uint64) (model.Producto, error) {
	var p model.Producto
	err := escanearProducto(r.db.QueryRowContext(ctx,
		"SELECT "+columnasProducto+" FROM productos WHERE id = ?", id), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Producto{}, ErrNoEncontrado
	}
	return p, err
}

// GetByReservaID returns the products attached to a reservation through
// the reserva_id foreign key. An empty slice is a valid result.
func (r *ProductoRepo) GetByReservaID(ctx context.Context, reservaID uint64) ([]model.Producto, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+columnasProducto+" FROM productos WHERE reserva_id = ?", reservaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Producto
	for rows.Next() {
		var p model.Producto
		if err := escanearProducto(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a new product and returns its auto-generated id.
// A duplicate name maps to ErrDuplicado.
func (r *ProductoRepo) Create(ctx context.Context, p model.Producto) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO productos (nombre, descripcion, precio, cantidad, estado_reserva, fecha_creacion) VALUES (?, ?, ?, ?, ?, ?)",
		p.Nombre, p.Descripcion, p.Precio, p.Cantidad, p.EstadoReserva, p.FechaCreacion)
	if esDuplicado(err, "nombre") {
		return 0, ErrDuplicado
	}
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces the editable fields of the product identified by id.
// Zero affected rows returns ErrNoEncontrado.
func (r *ProductoRepo) Update(ctx context.Context, id uint64, p model.Producto) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE productos SET nombre = ?, descripcion = ?, precio = ?, cantidad = ?, estado_reserva = ? WHERE id = ?",
		p.Nombre, p.Descripcion, p.Precio, p.Cantidad, p.EstadoReserva, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// UpdateStock overwrites the quantity unconditionally. No floor or
// ceiling is enforced; negative values pass through.
func (r *ProductoRepo) UpdateStock(ctx context.Context, id uint64, cantidad int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE productos SET cantidad = ? WHERE id = ?", cantidad, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// UpdateEstado overwrites the reservation state unconditionally. A nil
// estado clears the column.
func (r *ProductoRepo) UpdateEstado(ctx context.Context, id uint64, estado *string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE productos SET estado_reserva = ? WHERE id = ?", estado, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the product identified by id.
func (r *ProductoRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM productos WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
