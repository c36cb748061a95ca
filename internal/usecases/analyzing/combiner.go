package analyzing

import (
	"fmt"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// placeholderColumns son artefactos de la planilla de VENTAS que se descartan
// antes de unir las tablas.
var placeholderColumns = []string{"Unnamed: 13", "Unnamed: 14"}

// catalogKeyVariant es el nombre de la columna de cruce tal como viene en la
// hoja de vehículos (sin tilde); se renombra antes del join.
const catalogKeyVariant = "ID_Vehiculo"

// Combine produce la tabla unificada de ventas: primero la unión fila a fila
// de VENTAS y NUEVOS REGISTROS (en ese orden, cada una preservando su orden
// interno) y luego el left join contra el catálogo de vehículos por
// ID_Vehículo. Las ventas sin vehículo en el catálogo sobreviven con los
// atributos en nil; el join nunca cambia la cantidad de filas.
func Combine(sales, vehicles, newRecords *dataset.Table) (*dataset.Table, error) {
	cleaned := sales.Drop(placeholderColumns...)

	combined := cleaned.Concat(newRecords)

	catalog := vehicles.Rename(map[string]string{catalogKeyVariant: domain.ColIDVehiculo})

	if !combined.HasColumn(domain.ColIDVehiculo) {
		return nil, NewPipelineError(ErrJoinKeyMissing, StageCombine,
			fmt.Sprintf("las ventas no traen la columna %q", domain.ColIDVehiculo))
	}
	if !catalog.HasColumn(domain.ColIDVehiculo) {
		return nil, NewPipelineError(ErrJoinKeyMissing, StageCombine,
			fmt.Sprintf("el catálogo de vehículos no trae la columna %q", domain.ColIDVehiculo))
	}

	joined, err := combined.LeftJoin(
		catalog,
		domain.ColIDVehiculo,
		domain.ColMarca,
		domain.ColModelo,
		domain.ColTipoVehiculo,
		domain.ColAnio,
	)
	if err != nil {
		return nil, NewPipelineError(ErrJoinKeyMissing, StageCombine, err.Error())
	}

	return joined, nil
}
