// Package model defines the table-backed entities exposed by the API.
// Each struct mirrors one table; json tags follow the column names so
// handlers can return rows without an extra mapping layer.
package model

// Usuario represents a row in the `usuarios` table. Roles are "admin",
// "cliente" or "empleado"; Estado is "Activo" or "Inactivo". The password
// column is stored and compared in plaintext, exactly like the legacy
// system this API replaces.
type Usuario struct {
	ID        uint64 `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"` // unique key
	Password  string `json:"password"`
	Rol       string `json:"rol"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Estado    string `json:"estado"`
}
