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

func salesRow(branch, model, channel, segment, customer, gross, igv, net string) dataset.Row {
	return dataset.Row{
		domain.ColSede:            branch,
		domain.ColModeloVehiculo:  model,
		domain.ColCanalVenta:      channel,
		domain.ColSegmentoCliente: segment,
		domain.ColCliente:         customer,
		domain.ColPrecioVenta:     gross,
		domain.ColIGV:             igv,
		domain.ColPrecioSinIGV:    decimal.RequireFromString(net),
	}
}

func salesTable(rows ...dataset.Row) *dataset.Table {
	columns := append(domain.RequiredColumns(), domain.ColPrecioSinIGV)
	return dataset.New(columns, rows)
}

func TestRevenueByGroup_OrdersByRevenueDescending(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Toyota Hilux", "Presencial", "Particular", "C1", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Kia Rio", "Web", "Empresa", "C2", "354.00", "54.00", "300.00"),
	)

	result, err := RevenueByGroup(table, domain.ColSede, true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Sur", result[0].Label)
	assert.True(t, result[0].Total.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "Norte", result[1].Label)
	assert.True(t, result[1].Total.Equal(decimal.RequireFromString("100.00")))
}

func TestRevenueByGroup_AccumulatesPerGroup(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Toyota Hilux", "Presencial", "Particular", "C1", "118.00", "18.00", "100.00"),
		salesRow("Norte", "Kia Rio", "Web", "Empresa", "C2", "59.00", "9.00", "50.50"),
		salesRow("Sur", "Kia Rio", "Web", "Empresa", "C3", "118.00", "18.00", "100.00"),
	)

	result, err := RevenueByGroup(table, domain.ColSede, true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Norte", result[0].Label)
	assert.True(t, result[0].Total.Equal(decimal.RequireFromString("150.50")))
}

func TestRevenueByGroup_TiesKeepFirstAppearance(t *testing.T) {
	table := salesTable(
		salesRow("Este", "Toyota Hilux", "Presencial", "Particular", "C1", "118.00", "18.00", "100.00"),
		salesRow("Oeste", "Kia Rio", "Web", "Empresa", "C2", "118.00", "18.00", "100.00"),
	)

	result, err := RevenueByGroup(table, domain.ColSede, true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Este", result[0].Label)
	assert.Equal(t, "Oeste", result[1].Label)
}

func TestRevenueByGroup_NonIncreasingOrdering(t *testing.T) {
	table := salesTable(
		salesRow("A", "M", "Web", "Particular", "C1", "11.00", "1.00", "10.00"),
		salesRow("B", "M", "Web", "Particular", "C2", "44.00", "4.00", "40.00"),
		salesRow("C", "M", "Web", "Particular", "C3", "22.00", "2.00", "20.00"),
		salesRow("D", "M", "Web", "Particular", "C4", "44.00", "4.00", "40.00"),
	)

	result, err := RevenueByGroup(table, domain.ColSede, true)
	require.NoError(t, err)

	for i := 1; i < len(result); i++ {
		assert.False(t, result[i].Total.GreaterThan(result[i-1].Total),
			"el grupo %s no puede superar al anterior", result[i].Label)
	}
}

func TestRevenueByGroup_EmptyTable(t *testing.T) {
	result, err := RevenueByGroup(salesTable(), domain.ColSede, true)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTopModels(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Kia Rio", "Web", "Particular", "C1", "118.00", "18.00", "100.00"),
		salesRow("Norte", "Toyota Hilux", "Web", "Particular", "C2", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Kia Rio", "Web", "Particular", "C3", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Kia Rio", "Web", "Particular", "C4", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Hyundai Accent", "Web", "Particular", "C5", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Toyota Hilux", "Web", "Particular", "C6", "118.00", "18.00", "100.00"),
	)

	tests := []struct {
		name     string
		n        int
		expected []domain.ModelSales
	}{
		{
			name: "Trunca al ranking pedido",
			n:    2,
			expected: []domain.ModelSales{
				{Model: "Kia Rio", Units: 3},
				{Model: "Toyota Hilux", Units: 2},
			},
		},
		{
			name: "Menos modelos que el ranking devuelve todos",
			n:    10,
			expected: []domain.ModelSales{
				{Model: "Kia Rio", Units: 3},
				{Model: "Toyota Hilux", Units: 2},
				{Model: "Hyundai Accent", Units: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopModels(table, tt.n))
		})
	}
}

func TestTopModels_TiesKeepFirstAppearance(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Kia Rio", "Web", "Particular", "C1", "118.00", "18.00", "100.00"),
		salesRow("Norte", "Toyota Hilux", "Web", "Particular", "C2", "118.00", "18.00", "100.00"),
	)

	result := TopModels(table, 5)
	require.Len(t, result, 2)
	assert.Equal(t, "Kia Rio", result[0].Model)
	assert.Equal(t, "Toyota Hilux", result[1].Model)
}

func TestComputeMetrics(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Kia Rio", "Web", "Particular", "Ana", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Toyota Hilux", "Presencial", "Empresa", "Ana", "236.00", "36.00", "200.00"),
		salesRow("Sur", "Kia Rio", "Web", "Empresa", "Luis", "118.00", "18.00", "100.00"),
		// El cliente vacío no cuenta como único
		salesRow("Sur", "Kia Rio", "Web", "Empresa", "", "118.00", "18.00", "100.00"),
	)

	metrics, err := ComputeMetrics(table)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.UniqueCustomers)
	assert.Equal(t, 4, metrics.TotalSales)
	assert.Equal(t, 2, metrics.UniqueBranches)
	assert.Equal(t, 2, metrics.UniqueModels)
	assert.True(t, metrics.GrossRevenue.Equal(decimal.RequireFromString("590.00")))
	assert.True(t, metrics.NetRevenue.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, metrics.TotalIGV.Equal(decimal.RequireFromString("90.00")))
}

func TestComputeMetrics_EmptyTable(t *testing.T) {
	metrics, err := ComputeMetrics(salesTable())
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.TotalSales)
	assert.Equal(t, 0, metrics.UniqueCustomers)
	assert.True(t, metrics.NetRevenue.Equal(decimal.Zero))
}

func TestAggregate(t *testing.T) {
	table := salesTable(
		salesRow("Norte", "Kia Rio", "Web", "Particular", "Ana", "118.00", "18.00", "100.00"),
		salesRow("Sur", "Toyota Hilux", "Presencial", "Empresa", "Luis", "354.00", "54.00", "300.00"),
	)

	set, err := Aggregate(table, 0)
	require.NoError(t, err)
	require.NotNil(t, set)

	// El total por grupo y las métricas recorren la misma tabla: deben coincidir
	sum := decimal.Zero
	for _, group := range set.RevenueByBranch {
		sum = sum.Add(group.Total)
	}
	assert.True(t, sum.Equal(set.Metrics.NetRevenue))

	assert.Equal(t, "Sur", set.RevenueByBranch[0].Label)
	assert.Len(t, set.TopModels, 2)
	assert.Len(t, set.RevenueByChannel, 2)
	assert.Len(t, set.RevenueBySegment, 2)
	assert.Equal(t, 2, set.Metrics.TotalSales)
}

func TestAggregate_PropagatesCellErrors(t *testing.T) {
	table := salesTable(
		dataset.Row{
			domain.ColSede:         "Norte",
			domain.ColPrecioVenta:  "no-numerico",
			domain.ColIGV:          "18.00",
			domain.ColPrecioSinIGV: "tampoco",
		},
	)

	_, err := Aggregate(table, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDerivationFailure))
}
