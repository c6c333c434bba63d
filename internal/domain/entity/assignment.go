package entity

import "time"

// Assignment responsabilidad de una persona sobre un pasillo durante un intervalo
// inclusivo de fechas. ValidTo en cero significa asignación vigente sin fecha de fin.
type Assignment struct {
	Aisle     string
	PersonID  string
	ValidFrom time.Time
	ValidTo   time.Time
}

// Covers indica si la asignación está vigente en la fecha (solo se compara el día).
func (a Assignment) Covers(date time.Time) bool {
	if date.Before(a.ValidFrom) {
		return false
	}
	return a.ValidTo.IsZero() || !date.After(a.ValidTo)
}
