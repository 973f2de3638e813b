package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestao/internal/pkg/money"
)

func TestFormatBRL(t *testing.T) {
	cases := map[int64]string{
		0:          "R$ 0,00",
		5:          "R$ 0,05",
		100:        "R$ 1,00",
		20000:      "R$ 200,00",
		123456:     "R$ 1.234,56",
		100000000:  "R$ 1.000.000,00",
		-70000:     "-R$ 700,00",
		-123456789: "-R$ 1.234.567,89",
	}

	for cents, want := range cases {
		assert.Equal(t, want, money.FormatBRL(cents), "cents=%d", cents)
	}
}

func TestNewAmount(t *testing.T) {
	a := money.NewAmount(70000)

	assert.Equal(t, int64(70000), a.Cents)
	assert.Equal(t, "R$ 700,00", a.Display)
	assert.Equal(t, "700", money.ToReais(70000).String())
}
