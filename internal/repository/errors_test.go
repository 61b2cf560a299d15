package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestEsDuplicado(t *testing.T) {
	dup := &mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'juan@x.com' for key 'usuarios.email'",
	}

	tests := []struct {
		name  string
		err   error
		clave string
		want  bool
	}{
		{"clave coincide", dup, "email", true},
		{"clave distinta", dup, "nombre", false},
		{"envuelto", fmt.Errorf("insert: %w", dup), "email", true},
		{"otro código", &mysql.MySQLError{Number: 1452, Message: "foreign key fails"}, "email", false},
		{"error genérico", errors.New("connection refused"), "email", false},
		{"sin error", nil, "email", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := esDuplicado(tt.err, tt.clave); got != tt.want {
				t.Errorf("esDuplicado(%v, %q) = %v, quería %v", tt.err, tt.clave, got, tt.want)
			}
		})
	}
}
