package analyzing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

func TestDerivePrices_ComputesGrossMinusIGV(t *testing.T) {
	table := dataset.New(
		[]string{domain.ColPrecioVenta, domain.ColIGV},
		[]dataset.Row{{
			domain.ColPrecioVenta: "121.00",
			domain.ColIGV:         "21.00",
		}},
	)

	derived, err := DerivePrices(table)
	require.NoError(t, err)

	net, ok := derived.Row(0)[domain.ColPrecioSinIGV].(decimal.Decimal)
	require.True(t, ok)
	// Igualdad exacta, no aproximada
	assert.True(t, net.Equal(decimal.RequireFromString("100.00")), "se esperaba 100.00 y llegó %s", net)
}

func TestDerivePrices_PrefersSourceSuppliedNet(t *testing.T) {
	table := dataset.New(
		[]string{domain.ColPrecioVenta, domain.ColIGV, domain.ColPrecioSinIGVOriginal},
		[]dataset.Row{{
			domain.ColPrecioVenta:          "121.00",
			domain.ColIGV:                  "21.00",
			domain.ColPrecioSinIGVOriginal: "99.987", // difiere del cálculo: se respeta el origen
		}},
	)

	derived, err := DerivePrices(table)
	require.NoError(t, err)

	net := derived.Row(0)[domain.ColPrecioSinIGV].(decimal.Decimal)
	assert.True(t, net.Equal(decimal.RequireFromString("99.987")))
}

func TestDerivePrices_ThousandsSeparators(t *testing.T) {
	table := dataset.New(
		[]string{domain.ColPrecioVenta, domain.ColIGV},
		[]dataset.Row{{
			domain.ColPrecioVenta: "1,121.00",
			domain.ColIGV:         "121.00",
		}},
	)

	derived, err := DerivePrices(table)
	require.NoError(t, err)

	net := derived.Row(0)[domain.ColPrecioSinIGV].(decimal.Decimal)
	assert.True(t, net.Equal(decimal.NewFromInt(1000)))
}

func TestDerivePrices_InvalidNumber(t *testing.T) {
	tests := []struct {
		name string
		row  dataset.Row
	}{
		{
			name: "Precio no numérico",
			row:  dataset.Row{domain.ColPrecioVenta: "no-es-numero", domain.ColIGV: "21.00"},
		},
		{
			name: "IGV no numérico",
			row:  dataset.Row{domain.ColPrecioVenta: "121.00", domain.ColIGV: "???"},
		},
		{
			name: "Celda sin valor",
			row:  dataset.Row{domain.ColIGV: "21.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := dataset.New([]string{domain.ColPrecioVenta, domain.ColIGV}, []dataset.Row{tt.row})

			_, err := DerivePrices(table)
			require.Error(t, err)
			// Falla a nivel del conjunto: nunca se descartan filas en silencio
			assert.True(t, errors.Is(err, ErrDerivationFailure))
		})
	}
}

func TestCellDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		wantErr  bool
	}{
		{"Decimal", decimal.NewFromInt(5), "5", false},
		{"Cadena", "12.34", "12.34", false},
		{"Cadena con miles", "1,234.56", "1234.56", false},
		{"Float", 2.5, "2.5", false},
		{"Entero", 7, "7", false},
		{"Cadena vacía", "", "", true},
		{"Nil", nil, "", true},
		{"No numérico", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CellDecimal(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}
