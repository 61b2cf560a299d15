// Package repository contains data access logic separated from HTTP
// handlers. Every repository issues parameterized statements against a
// shared *sql.DB pool and maps the two outcomes callers must branch on
// into sentinel errors: zero matching rows and duplicate business keys.
// Anything else propagates unchanged and surfaces as a 500 upstream.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrNoEncontrado is returned when a lookup matches no rows or a
// mutation affects no rows. Handlers translate it into the legacy
// "no se encontró" message bodies, never into an error status.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ErrDuplicado is returned when an insert violates the unique constraint
// on a resource's business key (usuarios.email, productos.nombre).
// Handlers translate it into the legacy duplicate payload instead of
// letting the raw driver error leak.
var ErrDuplicado = errors.New("registro duplicado")

// esDuplicado reports whether err is a MySQL duplicate-entry violation
// (error 1062) on an index whose name contains clave.
func esDuplicado(err error, clave string) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1062 {
		return false
	}
	return strings.Contains(me.Message, clave)
}
