// Package textsearch contiene la comparación de texto usada por los filtros de búsqueda.
package textsearch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Contains indica si substr aparece en s sin distinguir mayúsculas ni minúsculas (case folding Unicode).
// Un substr vacío siempre coincide.
func Contains(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}
	// Caser no es seguro entre goroutines: uno por llamada.
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
