package analyzing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

func sourceTable(rows ...dataset.Row) *dataset.Table {
	return dataset.New([]string{domain.ColIDVehiculo, "Cliente"}, rows)
}

func catalogTable(rows ...dataset.Row) *dataset.Table {
	return dataset.New(
		[]string{"ID_Vehiculo", domain.ColMarca, domain.ColModelo, domain.ColTipoVehiculo, domain.ColAnio},
		rows,
	)
}

func TestCombine_RowCountIsAdditive(t *testing.T) {
	tests := []struct {
		name     string
		sales    *dataset.Table
		newRecs  *dataset.Table
		expected int
	}{
		{
			name: "Ventas y nuevos registros",
			sales: sourceTable(
				dataset.Row{domain.ColIDVehiculo: "V1", "Cliente": "C1"},
				dataset.Row{domain.ColIDVehiculo: "V2", "Cliente": "C2"},
			),
			newRecs:  sourceTable(dataset.Row{domain.ColIDVehiculo: "V1", "Cliente": "C3"}),
			expected: 3,
		},
		{
			name:  "Hoja de ventas vacía con tres nuevos registros",
			sales: sourceTable(),
			newRecs: sourceTable(
				dataset.Row{domain.ColIDVehiculo: "V1", "Cliente": "C1"},
				dataset.Row{domain.ColIDVehiculo: "V2", "Cliente": "C2"},
				dataset.Row{domain.ColIDVehiculo: "V3", "Cliente": "C3"},
			),
			expected: 3,
		},
	}

	catalog := catalogTable(
		dataset.Row{"ID_Vehiculo": "V1", domain.ColMarca: "Toyota", domain.ColModelo: "Corolla"},
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined, err := Combine(tt.sales, catalog, tt.newRecs)
			require.NoError(t, err)
			// El cruce con el catálogo nunca cambia la cantidad de filas
			assert.Equal(t, tt.expected, combined.Len())
		})
	}
}

func TestCombine_LeftJoinBringsVehicleAttributes(t *testing.T) {
	sales := sourceTable(
		dataset.Row{domain.ColIDVehiculo: "V1", "Cliente": "C1"},
		dataset.Row{domain.ColIDVehiculo: "V9", "Cliente": "C2"}, // sin catálogo
	)
	catalog := catalogTable(
		dataset.Row{"ID_Vehiculo": "V1", domain.ColMarca: "Toyota", domain.ColModelo: "Corolla", domain.ColTipoVehiculo: "Sedán", domain.ColAnio: "2023"},
	)

	combined, err := Combine(sales, catalog, sourceTable())
	require.NoError(t, err)

	require.Equal(t, 2, combined.Len())
	assert.Equal(t, "Toyota", combined.Row(0)[domain.ColMarca])
	assert.Equal(t, "Corolla", combined.Row(0)[domain.ColModelo])
	assert.Equal(t, "Sedán", combined.Row(0)[domain.ColTipoVehiculo])
	assert.Equal(t, "2023", combined.Row(0)[domain.ColAnio])

	// La venta sin vehículo en el catálogo sobrevive con atributos en nil
	assert.Nil(t, combined.Row(1)[domain.ColMarca])
	assert.Equal(t, "C2", combined.Row(1)["Cliente"])
}

func TestCombine_DropsPlaceholderColumns(t *testing.T) {
	sales := dataset.New(
		[]string{domain.ColIDVehiculo, "Cliente", "Unnamed: 13", "Unnamed: 14"},
		[]dataset.Row{{domain.ColIDVehiculo: "V1", "Cliente": "C1", "Unnamed: 13": "x", "Unnamed: 14": "y"}},
	)
	catalog := catalogTable()

	combined, err := Combine(sales, catalog, sourceTable())
	require.NoError(t, err)

	assert.False(t, combined.HasColumn("Unnamed: 13"))
	assert.False(t, combined.HasColumn("Unnamed: 14"))
}

func TestCombine_MissingJoinKey(t *testing.T) {
	t.Run("Clave ausente en las ventas", func(t *testing.T) {
		sales := dataset.New([]string{"Cliente"}, []dataset.Row{{"Cliente": "C1"}})
		_, err := Combine(sales, catalogTable(), dataset.New([]string{"Cliente"}, nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrJoinKeyMissing))
	})

	t.Run("Clave ausente en el catálogo", func(t *testing.T) {
		catalog := dataset.New([]string{domain.ColMarca}, nil)
		_, err := Combine(sourceTable(dataset.Row{domain.ColIDVehiculo: "V1"}), catalog, sourceTable())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrJoinKeyMissing))
	})
}
