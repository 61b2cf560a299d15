package model

// Producto represents a row in the `productos` table. EstadoReserva is
// nullable and can be cleared explicitly through the estado endpoint.
// ReservaID links a product to the reservation that holds it, if any.
type Producto struct {
	ID            uint64  `json:"id"`
	Nombre        string  `json:"nombre"` // unique key
	Descripcion   string  `json:"descripcion"`
	Precio        float64 `json:"precio"`
	Cantidad      int     `json:"cantidad"`
	EstadoReserva *string `json:"estado_reserva"`
	FechaCreacion *string `json:"fecha_creacion"`
	ReservaID     *uint64 `json:"reserva_id"`
}
