// Package rut valida y formatea el Rol Único Tributario chileno (RUT / RUN).
package rut

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalid se devuelve cuando el RUT no tiene formato válido o el dígito verificador no coincide.
var ErrInvalid = errors.New("rut inválido")

// ComputeVerifier calcula el dígito verificador (0-9 o K) para el cuerpo numérico del RUT
// con el algoritmo módulo 11 (pesos 2..7 aplicados de derecha a izquierda).
func ComputeVerifier(body string) (byte, error) {
	if body == "" {
		return 0, fmt.Errorf("%w: cuerpo vacío", ErrInvalid)
	}
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: el cuerpo contiene caracteres no numéricos", ErrInvalid)
		}
		sum += int(c-'0') * weight
		weight++
		if weight == 8 {
			weight = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + r), nil
	}
}

// Split limpia puntos, guiones y espacios y separa cuerpo y dígito verificador.
// "12.345.678-5" -> ("12345678", '5').
func Split(raw string) (string, byte, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	clean := b.String()
	if len(clean) < 2 {
		return "", 0, fmt.Errorf("%w: demasiado corto", ErrInvalid)
	}
	body := strings.TrimLeft(clean[:len(clean)-1], "0")
	if body == "" {
		return "", 0, fmt.Errorf("%w: cuerpo vacío", ErrInvalid)
	}
	return body, clean[len(clean)-1], nil
}

// Validate comprueba formato y dígito verificador.
func Validate(raw string) error {
	body, dv, err := Split(raw)
	if err != nil {
		return err
	}
	expected, err := ComputeVerifier(body)
	if err != nil {
		return err
	}
	if expected != dv {
		return fmt.Errorf("%w: el dígito verificador no coincide", ErrInvalid)
	}
	return nil
}

// Normalize valida el RUT y lo devuelve con separador de miles y guion: "12.345.678-5".
func Normalize(raw string) (string, error) {
	if err := Validate(raw); err != nil {
		return "", err
	}
	body, dv, _ := Split(raw)
	return groupThousands(body) + "-" + string(dv), nil
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
