package reports

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Claves reservadas para filas sin dimensión. Nunca se descartan: cuentan en
// los totales bajo su propia clave.
const (
	MissingKey = "—"
	Unassigned = "Sin asignación"
)

// NormalizeCode limpia un código de zona o pasillo: NFC, espacios colapsados y
// mayúsculas. "p 1 " y "P 1" terminan en la misma clave.
func NormalizeCode(s string) string {
	s = NormalizeName(s)
	if s == "" {
		return ""
	}
	// cases.Caser guarda estado; no se comparte entre goroutines.
	return cases.Upper(language.Spanish).String(s)
}

// NormalizeName limpia un nombre para mostrar sin cambiar mayúsculas.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

func codeOrMissing(s string) string {
	if c := NormalizeCode(s); c != "" {
		return c
	}
	return MissingKey
}

func normalizeCodes(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		c := NormalizeCode(s)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
