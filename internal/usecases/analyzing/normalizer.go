package analyzing

import (
	"fmt"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// columnMapping es el mapeo fijo de columnas del Excel de origen hacia los
// nombres canónicos del pipeline. Las columnas no mapeadas pasan sin cambios.
var columnMapping = map[string]string{
	"Sede":                 domain.ColSede,
	"Canal":                domain.ColCanalVenta,
	"Segmento":             domain.ColSegmentoCliente,
	"Precio Venta Real":    domain.ColPrecioVenta,
	"IGV":                  domain.ColIGV,
	"Cliente":              domain.ColCliente,
	"Precio Venta sin IGV": domain.ColPrecioSinIGVOriginal,
}

// Normalize estandariza los nombres de columna al esquema canónico y
// garantiza que MODELO_VEHICULO exista en toda fila: si falta tras el
// renombrado se sintetiza como "MARCA MODELO", y sin marca o modelo se asigna
// el valor ModeloNoEspecificado. Es una función pura: no hace I/O.
func Normalize(table *dataset.Table) (*dataset.Table, error) {
	normalized := table.Rename(columnMapping)

	if normalized.HasColumn(domain.ColModeloVehiculo) {
		return normalized, nil
	}

	values := make([]any, normalized.Len())
	hasParts := normalized.HasColumn(domain.ColMarca) && normalized.HasColumn(domain.ColModelo)
	for i := range values {
		if !hasParts {
			values[i] = domain.ModeloNoEspecificado
			continue
		}

		row := normalized.Row(i)
		marca, marcaOK := row[domain.ColMarca].(string)
		modelo, modeloOK := row[domain.ColModelo].(string)
		if marcaOK && modeloOK && marca != "" && modelo != "" {
			values[i] = fmt.Sprintf("%s %s", marca, modelo)
		} else {
			values[i] = domain.ModeloNoEspecificado
		}
	}

	return normalized.WithColumn(domain.ColModeloVehiculo, values)
}
