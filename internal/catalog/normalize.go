package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Remove os acentos decompondo em NFD e descartando as marcas combinantes
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText padroniza texto para comparação: minúsculas e sem acentos
func NormalizeText(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
