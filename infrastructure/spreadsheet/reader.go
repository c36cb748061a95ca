package spreadsheet

import (
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/diegothxnt/ventas-rpa/internal/usecases/analyzing"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// Reader lee hojas de un archivo Excel hacia tablas en memoria. Implementa
// analyzing.WorkbookReader.
type Reader struct{}

// NewReader crea un nuevo lector de planillas
func NewReader() *Reader {
	return &Reader{}
}

// ReadSheet lee la hoja indicada del archivo. La primera fila se interpreta
// como encabezados; las columnas con encabezado vacío (artefactos de la
// planilla) se descartan. Las celdas vacías quedan como nil en la tabla.
func (r *Reader) ReadSheet(path string, sheet string) (*dataset.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(analyzing.ErrWorkbookNotFound, path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error al abrir %s", path)
	}
	defer file.Close()

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(analyzing.ErrSheetMissing, sheet)
	}

	if len(rows) == 0 {
		return dataset.New(nil, nil), nil
	}

	headers := rows[0]
	columns := make([]string, 0, len(headers))
	for _, header := range headers {
		if header != "" {
			columns = append(columns, header)
		}
	}

	tableRows := make([]dataset.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(dataset.Row, len(columns))
		for i, header := range headers {
			if header == "" || i >= len(raw) || raw[i] == "" {
				continue
			}
			row[header] = raw[i]
		}
		tableRows = append(tableRows, row)
	}

	return dataset.New(columns, tableRows), nil
}
