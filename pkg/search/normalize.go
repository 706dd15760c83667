// Package search normaliza texto para búsquedas insensibles a mayúsculas y
// tildes ("Tornillería" y "tornilleria" deben coincidir).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin marcas diacríticas. Si la transformación
// falla (entrada no UTF-8 válida) devuelve la entrada en minúsculas tal cual.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
