// Package hr reglas de dominio de recursos humanos.
package hr

import (
	"fmt"
	"strings"
	"time"
)

// Tenure diferencia calendario entre contrato y finiquito.
type Tenure struct {
	Years  int
	Months int
	Days   int
}

// ComputeTenure calcula años, meses y días entre from y to, pidiendo prestado
// los días del mes anterior a to cuando hace falta.
func ComputeTenure(from, to time.Time) Tenure {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	days := to.Day() - from.Day()

	if days < 0 {
		months--
		// día 0 del mes de "to" = último día del mes anterior
		days += time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return Tenure{Years: years, Months: months, Days: days}
}

// String "2 años, 1 mes, 3 días"; "1 día" si todas las partes son cero.
func (t Tenure) String() string {
	var parts []string
	if t.Years > 0 {
		parts = append(parts, plural(t.Years, "año", "años"))
	}
	if t.Months > 0 {
		parts = append(parts, plural(t.Months, "mes", "meses"))
	}
	if t.Days > 0 {
		parts = append(parts, plural(t.Days, "día", "días"))
	}
	if len(parts) == 0 {
		return "1 día"
	}
	return strings.Join(parts, ", ")
}

// ServiceTime texto del tiempo de servicio; "-" si falta alguna de las fechas.
func ServiceTime(hiredOn, terminatedOn *time.Time) string {
	if hiredOn == nil || terminatedOn == nil {
		return "-"
	}
	return ComputeTenure(*hiredOn, *terminatedOn).String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
