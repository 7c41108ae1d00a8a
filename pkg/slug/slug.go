// Package slug normaliza identificadores de texto libre a códigos canónicos
// en minúsculas (slugs), estables como clave primaria.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeChars puntuación eliminada del slug: * + ~ . ( ) ' " ! : @
const removeChars = `*+~.()'"!:@`

// foldAccents descompone (NFD), quita marcas diacríticas y recompone (NFC),
// de modo que "Café" → "Cafe".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make devuelve el slug canónico de s: acentos plegados, puntuación del
// denylist eliminada, minúsculas, y espacios colapsados a guiones.
// Es idempotente: Make(Make(s)) == Make(s).
func Make(s string) string {
	if folded, _, err := transform.String(foldAccents, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(removeChars, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	// Colapsar espacios (incluidos los múltiples) a un solo guion.
	return strings.Join(strings.Fields(b.String()), "-")
}
