package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// UsuarioRepo encapsulates all database queries against the `usuarios`
// table. Users are keyed by id for reads but by email for mutations,
// matching how the rest of the business identifies people.
type UsuarioRepo struct {
	db *sql.DB
}

// NewUsuarioRepo constructs a UsuarioRepo with the provided DB handle.
func NewUsuarioRepo(db *sql.DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const columnasUsuario = "id, nombre, apellido, email, password, rol, telefono, direccion, estado"

// GetAll returns every user ordered by id. An empty slice means the
// table has no rows; that is not an error.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]model.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasUsuario+" FROM usuarios ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Usuario
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password,
			&u.Rol, &u.Telefono, &u.Direccion, &u.Estado); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID fetches a user by id. Returns ErrNoEncontrado when no row matches.
func (r *UsuarioRepo) GetByID(ctx context.Context, id uint64) (model.Usuario, error) {
	var u model.Usuario
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasUsuario+" FROM usuarios WHERE id = ?", id).
		Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password,
			&u.Rol, &u.Telefono, &u.Direccion, &u.Estado)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usuario{}, ErrNoEncontrado
	}
	return u, err
}

// GetByCredentials fetches the user whose email and password both match.
// The comparison is plain SQL equality on the stored plaintext password;
// this mirrors the legacy behavior on purpose and is the only
// authentication mechanism in the system.
func (r *UsuarioRepo) GetByCredentials(ctx context.Context, email, password string) (model.Usuario, error) {
	var u model.Usuario
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasUsuario+" FROM usuarios WHERE email = ? AND password = ?",
		email, password).
		Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password,
			&u.Rol, &u.Telefono, &u.Direccion, &u.Estado)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usuario{}, ErrNoEncontrado
	}
	return u, err
}

// Create inserts a new user. A duplicate email maps to ErrDuplicado.
func (r *UsuarioRepo) Create(ctx context.Context, u model.Usuario) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios (nombre, apellido, email, password, rol, telefono, direccion) VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.Nombre, u.Apellido, u.Email, u.Password, u.Rol, u.Telefono, u.Direccion)
	if esDuplicado(err, "email") {
		return ErrDuplicado
	}
	return err
}

// Update replaces the editable fields of the user identified by email.
// u.Email carries the (possibly new) email value. Zero affected rows
// returns ErrNoEncontrado; moving to an email that is already taken
// returns ErrDuplicado.
func (r *UsuarioRepo) Update(ctx context.Context, email string, u model.Usuario) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE usuarios SET nombre = ?, apellido = ?, email = ?, password = ?, rol = ?, telefono = ?, direccion = ? WHERE email = ?",
		u.Nombre, u.Apellido, u.Email, u.Password, u.Rol, u.Telefono, u.Direccion, email)
	if esDuplicado(err, "email") {
		return ErrDuplicado
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the user identified by email. Hard delete; the soft
// Activo/Inactivo flag is handled by UpdateEstado instead.
func (r *UsuarioRepo) Delete(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM usuarios WHERE email = ?", email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// UpdateEstado overwrites the estado column of the user identified by
// email. The authorization decision belongs to the caller; this method
// applies the write unconditionally.
func (r *UsuarioRepo) UpdateEstado(ctx context.Context, email, estado string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE usuarios SET estado = ? WHERE email = ?", estado, email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
