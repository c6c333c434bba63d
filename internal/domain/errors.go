package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidDate       = errors.New("fechas inválidas (desde/hasta)")
	ErrDateRange         = errors.New("la fecha 'desde' no puede ser mayor que 'hasta'")
	ErrRangeTooLong      = errors.New("el rango de fechas excede el máximo permitido")
	ErrInvalidGrouping   = errors.New("agrupación inválida (Dia, Semana, Mes o Anio)")
	ErrMissingColumn     = errors.New("falta una columna requerida en los datos de origen")
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")
)

// IsValidationError indica si err es un error de validación de la solicitud
// (se muestra al usuario; no es un fallo interno).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrDateRange) ||
		errors.Is(err, ErrRangeTooLong) ||
		errors.Is(err, ErrInvalidGrouping)
}
