package dataset

import (
	"fmt"
	"slices"
)

// Row representa una fila de la tabla. Las columnas ausentes se leen como nil.
type Row map[string]any

// Table es una estructura tabular en memoria con orden de columnas estable.
// Todas las operaciones devuelven tablas nuevas; la tabla original nunca se
// modifica, lo que permite encadenar etapas del pipeline sin efectos cruzados.
type Table struct {
	columns []string
	rows    []Row
}

// New crea una tabla a partir del orden de columnas y sus filas.
func New(columns []string, rows []Row) *Table {
	return &Table{
		columns: slices.Clone(columns),
		rows:    rows,
	}
}

// Columns devuelve los nombres de columna en su orden original.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len devuelve la cantidad de filas.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn indica si la columna existe en la tabla.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.columns, name)
}

// Row devuelve la fila en la posición i.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows devuelve las filas en orden.
func (t *Table) Rows() []Row {
	return t.rows
}

// Column devuelve todos los valores de una columna, fila por fila.
// Las filas sin valor aportan nil.
func (t *Table) Column(name string) []any {
	values := make([]any, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[name]
	}
	return values
}

// Rename devuelve una tabla con las columnas renombradas según el mapeo.
// Las columnas que no aparecen en el mapeo pasan sin cambios.
func (t *Table) Rename(mapping map[string]string) *Table {
	columns := make([]string, len(t.columns))
	for i, col := range t.columns {
		if renamed, ok := mapping[col]; ok {
			columns[i] = renamed
		} else {
			columns[i] = col
		}
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		clone := make(Row, len(row))
		for col, value := range row {
			if renamed, ok := mapping[col]; ok {
				clone[renamed] = value
			} else {
				clone[col] = value
			}
		}
		rows[i] = clone
	}

	return &Table{columns: columns, rows: rows}
}

// Drop devuelve una tabla sin las columnas indicadas. Las columnas que no
// existen se ignoran, igual que los artefactos de planilla que buscamos limpiar.
func (t *Table) Drop(names ...string) *Table {
	columns := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		if !slices.Contains(names, col) {
			columns = append(columns, col)
		}
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		clone := make(Row, len(row))
		for col, value := range row {
			if !slices.Contains(names, col) {
				clone[col] = value
			}
		}
		rows[i] = clone
	}

	return &Table{columns: columns, rows: rows}
}

// WithColumn devuelve una tabla con la columna asignada a los valores dados.
// Si la columna no existe se agrega al final; len(values) debe igualar Len().
func (t *Table) WithColumn(name string, values []any) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("columna %q: se esperaban %d valores y llegaron %d", name, len(t.rows), len(values))
	}

	columns := slices.Clone(t.columns)
	if !slices.Contains(columns, name) {
		columns = append(columns, name)
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		clone := make(Row, len(row)+1)
		for col, value := range row {
			clone[col] = value
		}
		clone[name] = values[i]
		rows[i] = clone
	}

	return &Table{columns: columns, rows: rows}, nil
}

// Concat devuelve la unión fila a fila de dos tablas: primero las filas del
// receptor y luego las de other, cada una preservando su orden interno.
// Las columnas nuevas de other se agregan al final del orden de columnas.
func (t *Table) Concat(other *Table) *Table {
	columns := slices.Clone(t.columns)
	for _, col := range other.columns {
		if !slices.Contains(columns, col) {
			columns = append(columns, col)
		}
	}

	rows := make([]Row, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	rows = append(rows, other.rows...)

	return &Table{columns: columns, rows: rows}
}

// LeftJoin combina la tabla con right mediante un left join sobre key,
// trayendo únicamente las columnas attrs del lado derecho. Toda fila del lado
// izquierdo sobrevive; sin coincidencia, los atributos quedan en nil.
// Con claves duplicadas en right gana la primera fila encontrada, de modo que
// el join nunca altera la cantidad de filas del lado izquierdo.
func (t *Table) LeftJoin(right *Table, key string, attrs ...string) (*Table, error) {
	if !t.HasColumn(key) {
		return nil, fmt.Errorf("columna de cruce %q ausente en la tabla izquierda", key)
	}
	if !right.HasColumn(key) {
		return nil, fmt.Errorf("columna de cruce %q ausente en la tabla derecha", key)
	}

	lookup := make(map[any]Row, right.Len())
	for _, row := range right.rows {
		k, ok := row[key]
		if !ok || k == nil {
			continue
		}
		if _, exists := lookup[k]; !exists {
			lookup[k] = row
		}
	}

	columns := slices.Clone(t.columns)
	for _, attr := range attrs {
		if !slices.Contains(columns, attr) {
			columns = append(columns, attr)
		}
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		clone := make(Row, len(row)+len(attrs))
		for col, value := range row {
			clone[col] = value
		}
		if match, ok := lookup[row[key]]; ok {
			for _, attr := range attrs {
				clone[attr] = match[attr]
			}
		}
		rows[i] = clone
	}

	return &Table{columns: columns, rows: rows}, nil
}
