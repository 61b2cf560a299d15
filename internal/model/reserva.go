package model

// Reserva represents a row in the `reservas` table. Estado moves through
// "pendiente", "confirmada", "cancelada" and "completada"; the storage
// engine does not enforce the transition order.
type Reserva struct {
	ID           uint64  `json:"id"`
	UsuarioID    uint64  `json:"usuario_id"`
	ProductoID   uint64  `json:"producto_id"`
	FechaReserva *string `json:"fecha_reserva"`
	Cantidad     int     `json:"cantidad"`
	Estado       string  `json:"estado"`
}
