// Package money formata valores inteiros em centavos para exibição.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount acompanha o valor em centavos e sua representação em reais.
type Amount struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// NewAmount cria um Amount a partir de centavos.
func NewAmount(cents int64) Amount {
	return Amount{Cents: cents, Display: FormatBRL(cents)}
}

// ToReais converte centavos para decimal (cents / 100) sem ponto flutuante.
func ToReais(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatBRL formata centavos como "R$ 1.234,56" (negativos: "-R$ 1.234,56").
func FormatBRL(cents int64) string {
	d := ToReais(cents)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
