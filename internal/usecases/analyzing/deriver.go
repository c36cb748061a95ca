package analyzing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// DerivePrices garantiza que PRECIO_SIN_IGV exista en toda fila. Si la
// planilla ya trae el precio sin IGV se copia tal cual (se confía en la
// precisión de origen); si no, se calcula PRECIO_VENTA - IGV fila a fila con
// aritmética decimal exacta. No se aplica redondeo: eso es responsabilidad de
// la presentación. Debe ejecutarse después de Validate, que garantiza la
// existencia de PRECIO_VENTA e IGV para la ruta de cálculo.
func DerivePrices(table *dataset.Table) (*dataset.Table, error) {
	values := make([]any, table.Len())

	if table.HasColumn(domain.ColPrecioSinIGVOriginal) {
		for i := 0; i < table.Len(); i++ {
			net, err := CellDecimal(table.Row(i)[domain.ColPrecioSinIGVOriginal])
			if err != nil {
				return nil, NewPipelineError(ErrDerivationFailure, StageDerive,
					fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColPrecioSinIGVOriginal, err))
			}
			values[i] = net
		}
	} else {
		for i := 0; i < table.Len(); i++ {
			row := table.Row(i)

			gross, err := CellDecimal(row[domain.ColPrecioVenta])
			if err != nil {
				return nil, NewPipelineError(ErrDerivationFailure, StageDerive,
					fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColPrecioVenta, err))
			}

			igv, err := CellDecimal(row[domain.ColIGV])
			if err != nil {
				return nil, NewPipelineError(ErrDerivationFailure, StageDerive,
					fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColIGV, err))
			}

			values[i] = gross.Sub(igv)
		}
	}

	return table.WithColumn(domain.ColPrecioSinIGV, values)
}

// CellDecimal convierte el valor de una celda a decimal exacto. Acepta los
// tipos que produce la lectura del Excel y los que generan las etapas previas.
func CellDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, fmt.Errorf("celda vacía")
		}
		// Los montos pueden venir con separador de miles desde la planilla
		trimmed = strings.ReplaceAll(trimmed, ",", "")
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, fmt.Errorf("valor no numérico %q", v)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case nil:
		return decimal.Zero, fmt.Errorf("celda sin valor")
	default:
		return decimal.Zero, fmt.Errorf("tipo no soportado %T", value)
	}
}

// CellString convierte el valor de una celda a su etiqueta de agrupación.
// Devuelve cadena vacía para celdas sin valor.
func CellString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
