package model

// Pago represents a row in the `pagos` table. MetodoPago is one of
// "transferencia", "efectivo", "tarjeta" or "otro". Comprobante holds an
// external receipt reference and may be null.
type Pago struct {
	ID          uint64  `json:"id"`
	UsuarioID   uint64  `json:"usuario_id"`
	ReservaID   uint64  `json:"reserva_id"`
	Monto       float64 `json:"monto"`
	FechaPago   *string `json:"fecha_pago"`
	MetodoPago  string  `json:"metodo_pago"`
	Comprobante *string `json:"comprobante"`
}
