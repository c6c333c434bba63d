package entity

// Person miembro del personal. El motor de reportes solo usa el mapa id → nombre.
type Person struct {
	ID     string
	Name   string
	Active bool
}
