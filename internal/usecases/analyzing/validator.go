package analyzing

import (
	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// Validate confirma que todas las columnas canónicas que exige el agregador
// estén presentes tras la normalización. Ante columnas ausentes devuelve un
// SchemaError que enumera todas las faltantes, para que el diagnóstico sea
// completo en una sola falla. No modifica la tabla.
func Validate(table *dataset.Table) error {
	var missing []string
	for _, column := range domain.RequiredColumns() {
		if !table.HasColumn(column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}

	return nil
}
