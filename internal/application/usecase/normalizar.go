package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar deja un término de búsqueda en minúsculas y sin diacríticos,
// para que "García" y "garcia" comparen igual.
func normalizar(s string) string {
	sinAcentos, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(sinAcentos)
}

// coincide indica si el término aparece en alguno de los campos, comparando
// ambos lados ya normalizados.
func coincide(termino string, campos ...string) bool {
	termino = normalizar(termino)
	if termino == "" {
		return true
	}
	for _, c := range campos {
		if strings.Contains(normalizar(c), termino) {
			return true
		}
	}
	return false
}
