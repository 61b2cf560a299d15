package database

import (
	"strings"
	"testing"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN("app", "secreta", "db.local", "3306", "antiguedades")

	if !strings.HasPrefix(dsn, "app:secreta@tcp(db.local:3306)/antiguedades?") {
		t.Errorf("dsn = %q", dsn)
	}
	// matched-rows semantics: an update that changes nothing on an
	// existing row must still count as affected, never as not-found
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Errorf("dsn sin clientFoundRows: %q", dsn)
	}
	// dates travel as strings; parseTime must stay off
	if strings.Contains(dsn, "parseTime") {
		t.Errorf("dsn no debería activar parseTime: %q", dsn)
	}
}

func TestBuildDSNSinPassword(t *testing.T) {
	dsn := buildDSN("app", "", "localhost", "3306", "antiguedades")
	if !strings.HasPrefix(dsn, "app@tcp(localhost:3306)/antiguedades?") {
		t.Errorf("dsn = %q", dsn)
	}
}
