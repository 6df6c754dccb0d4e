// Package clp formatea y lee montos en pesos chilenos (sin decimales, miles con punto).
package clp

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format devuelve el monto truncado a entero con puntos como separador de miles: 1234567 -> "1.234.567".
func Format(amount decimal.Decimal) string {
	s := amount.Truncate(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ParseAmount lee montos escritos a mano ("50.000", "$ 1,200", "800") ignorando separadores.
func ParseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(".", "", ",", "", "$", "", " ", "").Replace(strings.TrimSpace(raw))
	if clean == "" {
		return decimal.Zero, fmt.Errorf("clp: monto vacío")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("clp: monto inválido %q: %w", raw, err)
	}
	return d, nil
}
