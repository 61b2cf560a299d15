package model

// Envio represents a row in the `envios` table. Estado is one of
// "pendiente", "en_transito", "entregado" or "cancelado".
type Envio struct {
	ID            uint64  `json:"id"`
	ReservaID     uint64  `json:"reserva_id"`
	FechaDespacho *string `json:"fecha_despacho"`
	Estado        string  `json:"estado"`
	Direccion     string  `json:"direccion"`
}
