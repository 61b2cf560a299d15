// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservaCreadaEvent is published when a reservation is inserted. It
// carries enough information for downstream consumers (notifications,
// reporting) to act without querying the primary database.
type ReservaCreadaEvent struct {
	ReservaID    uint64 `json:"reserva_id"`
	UsuarioID    uint64 `json:"usuario_id"`
	ProductoID   uint64 `json:"producto_id"`
	Cantidad     int    `json:"cantidad"`
	Estado       string `json:"estado"`
	FechaReserva string `json:"fecha_reserva,omitempty"`
	CreadaEn     string `json:"creada_en"`
}
