package entity

// RawMaterial materia prima (hilo, tela, espuma...) con su unidad de medida.
type RawMaterial struct {
	ID     int64
	Name   string
	Unit   string
	Active bool
}
