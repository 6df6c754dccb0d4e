// Package tax contiene las reglas tributarias del dominio (IVA chileno 19%).
package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de documento usados en los registros financieros.
const (
	DocFactura     = "FACTURA"
	DocBoleta      = "BOLETA"
	DocNotaDebito  = "NOTA_DEBITO"
	DocNotaCredito = "NOTA_CREDITO"
	DocVenta       = "VENTA"
	DocGasto       = "GASTO"
)

// vatDivisor factor para separar el neto de un monto con IVA incluido (1 + 19%).
var vatDivisor = decimal.RequireFromString("1.19")

// NormalizeDocumentType deja el tipo en mayúsculas y con guion bajo:
// "nota de crédito" -> "NOTA_CREDITO", " boleta " -> "BOLETA".
func NormalizeDocumentType(docType string) string {
	s := strings.ToUpper(strings.TrimSpace(docType))
	s = strings.NewReplacer("É", "E", "\u0301", "", "-", " ").Replace(s)
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if f == "DE" {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, "_")
}

// IsVATLiable indica si el tipo de documento lleva IVA incluido en su monto bruto.
func IsVATLiable(docType string) bool {
	switch NormalizeDocumentType(docType) {
	case DocFactura, DocBoleta, DocNotaDebito, DocNotaCredito:
		return true
	}
	return false
}

// ComputeVAT calcula el IVA contenido en un monto bruto: bruto - floor(bruto / 1.19).
// Para tipos sin IVA devuelve cero.
func ComputeVAT(gross decimal.Decimal, docType string) decimal.Decimal {
	if !IsVATLiable(docType) {
		return decimal.Zero
	}
	return backCalculate(gross)
}

// RecoverableVAT IVA recuperable de un gasto de caja chica: sólo boletas y facturas.
func RecoverableVAT(amount decimal.Decimal, docType string) decimal.Decimal {
	switch NormalizeDocumentType(docType) {
	case DocFactura, DocBoleta:
		return backCalculate(amount)
	}
	return decimal.Zero
}

// NetAmount devuelve el neto (bruto - IVA) según el tipo de documento.
func NetAmount(gross decimal.Decimal, docType string) decimal.Decimal {
	return gross.Sub(ComputeVAT(gross, docType))
}

func backCalculate(gross decimal.Decimal) decimal.Decimal {
	net := gross.Div(vatDivisor).Floor()
	return gross.Sub(net)
}
