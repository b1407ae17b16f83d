// Package slug deriva el código de una empresa (clave primaria y segmento de URL)
// a partir de su nombre legible.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '_'

// Make normaliza name a un identificador en minúsculas separado por "_".
// Quita tildes y diacríticos ("Compañía" -> "compania"), colapsa cualquier
// secuencia de caracteres fuera de [a-z0-9] en un solo "_" y recorta los extremos.
// "Test Company 2" -> "test_company_2". Devuelve "" si name no tiene letras ni dígitos.
func Make(name string) string {
	// El transformer guarda estado: se construye en cada llamada.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
