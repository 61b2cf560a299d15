package model

// EntradaBlog represents a row in the `blog` table. Estado is a 0/1 flag;
// deactivation sets it to 0 instead of deleting the row, so inactive
// entries stay addressable by id or titulo.
type EntradaBlog struct {
	ID               uint64  `json:"id"`
	Titulo           string  `json:"titulo"`
	Resumen          *string `json:"resumen"`
	CreadoPor        uint64  `json:"creado_por"` // usuarios.id of the author
	CuerpoTexto      string  `json:"cuerpo_texto"`
	Referencia       *string `json:"referencia"`
	FechaPublicacion *string `json:"fecha_publicacion"`
	Estado           int8    `json:"estado"`
}
