package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sthandier/antiguedades-api/internal/model"
)

// BlogRepo encapsulates all database queries against the `blog` table.
// Entries support soft deactivation (estado = 0) in addition to the
// regular hard delete.
type BlogRepo struct {
	db *sql.DB
}

// NewBlogRepo constructs a BlogRepo with the provided DB handle.
func NewBlogRepo(db *sql.DB) *BlogRepo {
	return &BlogRepo{db: db}
}

const columnasBlog = "id, titulo, resumen, creado_por, cuerpo_texto, referencia, fecha_publicacion, estado"

// GetAll returns every blog entry ordered by id, active or not.
func (r *BlogRepo) GetAll(ctx context.Context) ([]model.EntradaBlog, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columnasBlog+" FROM blog ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EntradaBlog
	for rows.Next() {
		var b model.EntradaBlog
		if err := rows.Scan(&b.ID, &b.Titulo, &b.Resumen, &b.CreadoPor,
			&b.CuerpoTexto, &b.Referencia, &b.FechaPublicacion, &b.Estado); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID fetches a blog entry by id. Returns ErrNoEncontrado when no row matches.
func (r *BlogRepo) GetByID(ctx context.Context, id uint64) (model.EntradaBlog, error) {
	var b model.EntradaBlog
	err := r.db.QueryRowContext(ctx,
		"SELECT "+columnasBlog+" FROM blog WHERE id = ?", id).
		Scan(&b.ID, &b.Titulo, &b.Resumen, &b.CreadoPor,
			&b.CuerpoTexto, &b.Referencia, &b.FechaPublicacion, &b.Estado)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EntradaBlog{}, ErrNoEncontrado
	}
	return b, err
}

// Create inserts a new blog entry and returns its auto-generated id.
func (r *BlogRepo) Create(ctx context.Context, b model.EntradaBlog) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO blog (titulo, resumen, creado_por, cuerpo_texto, referencia, fecha_publicacion) VALUES (?, ?, ?, ?, ?, ?)",
		b.Titulo, b.Resumen, b.CreadoPor, b.CuerpoTexto, b.Referencia, b.FechaPublicacion)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces the editable fields of the blog entry identified by id.
func (r *BlogRepo) Update(ctx context.Context, id uint64, b model.EntradaBlog) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE blog SET titulo = ?, resumen = ?, creado_por = ?, cuerpo_texto = ?, referencia = ?, fecha_publicacion = ? WHERE id = ?",
		b.Titulo, b.Resumen, b.CreadoPor, b.CuerpoTexto, b.Referencia, b.FechaPublicacion, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Delete removes the blog entry identified by id.
func (r *BlogRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM blog WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// Desactivar sets estado = 0 on the entry selected by id, or by titulo
// when id is zero. Validation that at least one selector is present
// belongs to the handler; this method assumes it holds.
func (r *BlogRepo) Desactivar(ctx context.Context, id uint64, titulo string) error {
	var (
		res sql.Result
		err error
	)
	if id != 0 {
		res, err = r.db.ExecContext(ctx, "UPDATE blog SET estado = 0 WHERE id = ?", id)
	} else {
		res, err = r.db.ExecContext(ctx, "UPDATE blog SET estado = 0 WHERE titulo = ?", titulo)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEncontrado
	}
	return nil
}
