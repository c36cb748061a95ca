package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diegothxnt/ventas-rpa/internal/usecases/analyzing"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := "VENTAS"
	index, err := file.NewSheet(sheet)
	require.NoError(t, err)
	file.SetActiveSheet(index)

	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"ID_Vehículo", "Sede", "", "Cliente"}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{"V-1", "Norte", "basura", "Ana"}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{"V-2", "", "", "Luis"}))

	path := filepath.Join(t.TempDir(), "ventas.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	table, err := NewReader().ReadSheet(path, "VENTAS")
	require.NoError(t, err)

	// El encabezado vacío se descarta junto con su columna
	assert.Equal(t, []string{"ID_Vehículo", "Sede", "Cliente"}, table.Columns())
	require.Equal(t, 2, table.Len())

	first := table.Row(0)
	assert.Equal(t, "V-1", first["ID_Vehículo"])
	assert.Equal(t, "Norte", first["Sede"])
	assert.Equal(t, "Ana", first["Cliente"])

	// Las celdas vacías quedan sin valor, no como cadena vacía
	second := table.Row(1)
	assert.Equal(t, "V-2", second["ID_Vehículo"])
	assert.Nil(t, second["Sede"])
}

func TestReadSheet_FileNotFound(t *testing.T) {
	table, err := NewReader().ReadSheet(filepath.Join(t.TempDir(), "no-existe.xlsx"), "VENTAS")

	assert.Nil(t, table)
	assert.ErrorIs(t, err, analyzing.ErrWorkbookNotFound)
}

func TestReadSheet_SheetMissing(t *testing.T) {
	path := writeTestWorkbook(t)

	table, err := NewReader().ReadSheet(path, "NO EXISTE")

	assert.Nil(t, table)
	assert.ErrorIs(t, err, analyzing.ErrSheetMissing)
}
